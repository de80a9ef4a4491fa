package fmp

import (
	"context"
	"fmt"
	"strings"
	"time"

	drepo "IPOCal/internal/domain/repository"
	xhttp "IPOCal/pkg/http"
	xutil "IPOCal/pkg/util"
)

const (
	DefaultBaseURL   = "https://financialmodelingprep.com/api/v3"
	DefaultUserAgent = "IPO-Calendar-App/1.0"
	DemoAPIKey       = "demo"
)

// Client reads the Financial Modeling Prep IPO calendar.
type Client struct {
	http    *xhttp.Client
	baseURL string
	apiKey  string
}

// New creates an IPO calendar provider. An empty apiKey falls back to the
// public demo key.
func New(baseURL, apiKey, userAgent string, timeout time.Duration) drepo.IPOProvider {
	return newClient(baseURL, apiKey, xhttp.NewClient(
		xhttp.WithTimeout(timeout),
		xhttp.WithHeader("Accept", "application/json"),
		xhttp.WithHeader("User-Agent", userAgent),
	))
}

func newClient(baseURL, apiKey string, hc *xhttp.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		apiKey = DemoAPIKey
	}
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

// FetchCalendar returns the raw calendar entries between from and to.
// Anything other than a JSON array is an error; non-object elements are
// passed on as empty entries so the normalizer still sees them.
func (c *Client) FetchCalendar(ctx context.Context, from, to time.Time) ([]map[string]any, error) {
	var payload any
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/ipo_calendar",
		QueryParams: map[string][]string{
			"from":   {xutil.FormatDate(from)},
			"to":     {xutil.FormatDate(to)},
			"apikey": {c.apiKey},
		},
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("fmp ipo_calendar: %w", err)
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("fmp ipo_calendar: expected array, got %T", payload)
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, _ := item.(map[string]any)
		if m == nil {
			m = map[string]any{}
		}
		out = append(out, m)
	}
	return out, nil
}
