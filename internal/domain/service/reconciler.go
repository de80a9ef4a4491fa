package service

import (
	"fmt"
	"slices"
	"sync"

	"IPOCal/internal/domain/models"
	xutil "IPOCal/pkg/util"

	"github.com/go-playground/validator/v10"
)

// Reconcile merges live records with the fallback set. Live records come
// first so they win any ticker collision; within each input the first
// occurrence of a ticker is kept. The result is stably sorted by listing
// date with unscheduled records last. Inputs are not modified.
func Reconcile(live, fallback []models.IPO) []models.IPO {
	merged := make([]models.IPO, 0, len(live)+len(fallback))
	seen := make(map[string]struct{}, len(live)+len(fallback))
	for _, src := range [][]models.IPO{live, fallback} {
		for _, ipo := range src {
			if _, dup := seen[ipo.Ticker]; dup {
				continue
			}
			seen[ipo.Ticker] = struct{}{}
			merged = append(merged, ipo)
		}
	}
	SortByListingDate(merged)
	return merged
}

// SortByListingDate orders records ascending by listing date in place.
// Empty or malformed dates sort as 9999-12-31; on equal keys a record with a
// date goes before one without, otherwise input order is kept.
func SortByListingDate(ipos []models.IPO) {
	slices.SortStableFunc(ipos, func(a, b models.IPO) int {
		if c := xutil.DateOrMax(a.ListingDate).Compare(xutil.DateOrMax(b.ListingDate)); c != 0 {
			return c
		}
		return boolRank(a.ListingDate == "") - boolRank(b.ListingDate == "")
	})
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// ValidateSet checks a reconciled set before it is served: every record must
// pass its struct tags and tickers must be unique.
func ValidateSet(ipos []models.IPO) error {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation(models.StatusTag, ValidStatusField)
	})

	seen := make(map[string]int, len(ipos))
	for i := range ipos {
		if err := validate.Struct(ipos[i]); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, ipos[i].Ticker, err)
		}
		if j, dup := seen[ipos[i].Ticker]; dup {
			return fmt.Errorf("duplicate ticker %s at %d and %d", ipos[i].Ticker, j, i)
		}
		seen[ipos[i].Ticker] = i
	}
	return nil
}

// ValidStatusField backs the models.StatusTag validator tag.
func ValidStatusField(fl validator.FieldLevel) bool {
	return models.Status(fl.Field().String()).Valid()
}
