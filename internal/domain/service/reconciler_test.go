package service

import (
	"reflect"
	"testing"

	"IPOCal/internal/domain/models"
)

func rec(ticker, date string) models.IPO {
	return models.IPO{Ticker: ticker, Name: ticker + " Corp", Exchange: "NASDAQ", ListingDate: date, Status: models.StatusFiled}
}

func tickers(ipos []models.IPO) []string {
	out := make([]string, len(ipos))
	for i, ipo := range ipos {
		out[i] = ipo.Ticker
	}
	return out
}

func TestReconcileLiveWinsAndSorts(t *testing.T) {
	live := []models.IPO{rec("AAA", "2025-09-01")}
	fallback := []models.IPO{rec("AAA", "2025-01-01"), rec("BBB", "2025-02-01")}

	got := Reconcile(live, fallback)

	if want := []string{"BBB", "AAA"}; !reflect.DeepEqual(tickers(got), want) {
		t.Fatalf("order = %v, want %v", tickers(got), want)
	}
	if got[1].ListingDate != "2025-09-01" {
		t.Fatalf("live AAA should win, got date %s", got[1].ListingDate)
	}
}

func TestReconcileEmptyLiveReturnsFallback(t *testing.T) {
	fallback := []models.IPO{rec("A", "2025-01-01"), rec("B", "2025-01-02"), rec("C", "")}
	got := Reconcile(nil, fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("got %v, want fallback verbatim", tickers(got))
	}
	got[0].Ticker = "MUTATED"
	if fallback[0].Ticker != "A" {
		t.Fatalf("reconcile result aliases the fallback slice")
	}
}

func TestReconcileUniqueTickersAndOrdering(t *testing.T) {
	live := []models.IPO{
		rec("N/A", ""),
		rec("X", "2026-03-01"),
		rec("N/A", "2026-01-01"),
		rec("Y", "garbage"),
		rec("X", "2026-02-01"),
		rec("Z", "2026-01-15"),
	}
	fallback := []models.IPO{rec("Z", "2025-01-01"), rec("W", ""), rec("V", "2026-01-15")}

	got := Reconcile(live, fallback)

	seen := map[string]bool{}
	for _, ipo := range got {
		if seen[ipo.Ticker] {
			t.Fatalf("duplicate ticker %s in %v", ipo.Ticker, tickers(got))
		}
		seen[ipo.Ticker] = true
	}

	want := []string{"Z", "V", "X", "Y", "N/A", "W"}
	if !reflect.DeepEqual(tickers(got), want) {
		t.Fatalf("order = %v, want %v", tickers(got), want)
	}

	sawEmpty := false
	for _, ipo := range got {
		if ipo.ListingDate == "" {
			sawEmpty = true
		} else if sawEmpty {
			t.Fatalf("dated record %s after an unscheduled one", ipo.Ticker)
		}
	}
}

func TestReconcileIsDeterministic(t *testing.T) {
	live := []models.IPO{rec("B", "2025-05-01"), rec("A", "2025-05-01"), rec("C", "")}
	fallback := []models.IPO{rec("D", "2025-05-01"), rec("A", "2024-01-01")}

	first := Reconcile(live, fallback)
	second := Reconcile(live, fallback)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reconcile not deterministic: %v vs %v", tickers(first), tickers(second))
	}
	if want := []string{"B", "A", "D", "C"}; !reflect.DeepEqual(tickers(first), want) {
		t.Fatalf("ties must keep input order: got %v want %v", tickers(first), want)
	}
}

func TestValidateSet(t *testing.T) {
	ok := []models.IPO{rec("A", ""), rec("B", "2025-01-01")}
	if err := ValidateSet(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := []models.IPO{rec("A", ""), rec("A", "")}
	if err := ValidateSet(dup); err == nil {
		t.Fatalf("expected duplicate ticker error")
	}

	bad := rec("A", "")
	bad.Status = "live-ish"
	if err := ValidateSet([]models.IPO{bad}); err == nil {
		t.Fatalf("expected status validation error")
	}

	for _, s := range models.AllStatuses {
		r := rec("A", "")
		r.Status = s
		if err := ValidateSet([]models.IPO{r}); err != nil {
			t.Fatalf("status %s rejected: %v", s, err)
		}
	}

	noName := rec("A", "")
	noName.Name = ""
	if err := ValidateSet([]models.IPO{noName}); err == nil {
		t.Fatalf("expected name validation error")
	}
}
