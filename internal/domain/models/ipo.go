package models

import (
	"slices"
	"time"
)

// Status is the lifecycle state of an offering. It is always derived by the
// classifier (or curated in the fallback set), never copied from provider input.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusFiled     Status = "filed"
	StatusLive      Status = "live"
	StatusPostponed Status = "postponed"
	StatusWithdrawn Status = "withdrawn"
	StatusPriced    Status = "priced"
)

// Defaults applied by the normalizer when the provider omits a field.
const (
	UnknownTicker   = "N/A"
	UnknownCompany  = "Unknown Company"
	UnknownExchange = "Unknown"
)

// Fixed calendar constants.
const (
	CacheTTL        = 5 * time.Minute
	LookbackMonths  = 2
	LookaheadMonths = 6
	NearTermWindow  = 30 * 24 * time.Hour
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{StatusUpcoming, StatusFiled, StatusLive, StatusPostponed, StatusWithdrawn, StatusPriced}

// StatusTag is the validator tag accepting exactly AllStatuses.
const StatusTag = "ipo_status"

func (s Status) Valid() bool {
	return slices.Contains(AllStatuses, s)
}

// StatusNames returns AllStatuses as plain strings.
func StatusNames() []string {
	out := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		out[i] = string(s)
	}
	return out
}

// IPO is the canonical calendar record shared by every layer.
type IPO struct {
	Ticker            string   `json:"ticker" validate:"required"`
	Name              string   `json:"name" validate:"required"`
	Exchange          string   `json:"exchange" validate:"required"`
	ListingDate       string   `json:"listing_date"`
	PriceLow          *float64 `json:"price_low,omitempty"`
	PriceHigh         *float64 `json:"price_high,omitempty"`
	SharesOutstanding *int64   `json:"shares_outstanding,omitempty"`
	Status            Status   `json:"status" validate:"required,ipo_status"`
	USCode            string   `json:"us_code,omitempty"`
	Sector            string   `json:"sector,omitempty"`
	MarketCap         *float64 `json:"market_cap,omitempty"`
	CurrentPrice      *float64 `json:"current_price,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// Result is what the calendar use case hands to its callers. Data is never
// empty: on failure it carries the fallback set and Error explains why.
type Result struct {
	Success bool
	Data    []IPO
	Error   string
}
