package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"IPOCal/internal/domain/models"
	xutil "IPOCal/pkg/util"
)

// Provider field aliases, most specific first.
var (
	tickerKeys      = []string{"symbol", "ticker"}
	nameKeys        = []string{"company", "name"}
	exchangeKeys    = []string{"exchange"}
	dateKeys        = []string{"date", "expectedDate"}
	priceLowKeys    = []string{"priceFrom"}
	priceHighKeys   = []string{"priceTo"}
	sharesKeys      = []string{"numberOfShares", "shares"}
	statusKeys      = []string{"status", "actions"}
	sectorKeys      = []string{"industry", "sector"}
	descriptionKeys = []string{"description"}
	usCodeKeys      = []string{"cik"}
	marketCapKeys   = []string{"marketCap"}
)

// Normalize maps one raw provider entry onto the canonical record. It never
// fails: missing or malformed fields fall back to defaults or stay absent.
// The raw map is only read.
func Normalize(raw map[string]any, now time.Time) models.IPO {
	listingDate := firstString(raw, dateKeys...)

	ipo := models.IPO{
		Ticker:      strings.ToUpper(firstString(raw, tickerKeys...)),
		Name:        firstString(raw, nameKeys...),
		Exchange:    firstString(raw, exchangeKeys...),
		ListingDate: listingDate,
		PriceLow:    firstNumber(raw, priceLowKeys...),
		PriceHigh:   firstNumber(raw, priceHighKeys...),
		Status:      Classify(firstString(raw, statusKeys...), listingDate, now),
		Sector:      firstString(raw, sectorKeys...),
		Description: firstString(raw, descriptionKeys...),
		USCode:      firstString(raw, usCodeKeys...),
		MarketCap:   firstNumber(raw, marketCapKeys...),
	}
	if shares := firstNumber(raw, sharesKeys...); shares != nil {
		// out of int64 range counts as absent
		if t := math.Trunc(*shares); t >= math.MinInt64 && t < math.MaxInt64 && t != 0 {
			n := int64(t)
			ipo.SharesOutstanding = &n
		}
	}

	if ipo.Ticker == "" {
		ipo.Ticker = models.UnknownTicker
	}
	if ipo.Name == "" {
		ipo.Name = models.UnknownCompany
	}
	if ipo.Exchange == "" {
		ipo.Exchange = models.UnknownExchange
	}
	return ipo
}

// firstString returns the first alias holding a non-blank scalar.
func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// firstNumber returns the first alias that coerces to a usable number.
// Zero and unparseable values count as absent.
func firstNumber(raw map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		if v, ok := toNumber(raw[k]); ok {
			return &v
		}
	}
	return nil
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, ok := xutil.ParseFloatPrefix(n)
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
