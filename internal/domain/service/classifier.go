package service

import (
	"strings"
	"time"

	"IPOCal/internal/domain/models"
	xutil "IPOCal/pkg/util"
)

// Classify derives the lifecycle status of an offering from the provider's
// free-text status and its listing date. Rules are checked in order:
//
//  1. no listing date            -> filed
//  2. listing day before today   -> live
//  3. raw status mentions priced, postponed or withdrawn (in that order)
//  4. listing within NearTermWindow of today -> upcoming, otherwise filed
//
// Dates compare at calendar-day granularity in UTC. A date that cannot be
// parsed is never treated as past and never as near-term.
func Classify(rawStatus, listingDate string, now time.Time) models.Status {
	if strings.TrimSpace(listingDate) == "" {
		return models.StatusFiled
	}

	today := xutil.TruncateDay(now)
	listing, ok := xutil.ParseDate(listingDate)
	if ok && listing.Before(today) {
		return models.StatusLive
	}

	raw := strings.ToLower(rawStatus)
	switch {
	case strings.Contains(raw, "priced"):
		return models.StatusPriced
	case strings.Contains(raw, "postponed"):
		return models.StatusPostponed
	case strings.Contains(raw, "withdrawn"):
		return models.StatusWithdrawn
	}

	if ok && listing.Sub(today) < models.NearTermWindow {
		return models.StatusUpcoming
	}
	return models.StatusFiled
}
