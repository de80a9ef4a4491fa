package util

import (
    "strings"
    "time"
)

// DateLayout is the calendar date format used on the wire (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MaxDate is the sort sentinel for unscheduled listings.
var MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
    DateLayout,
    time.RFC3339,
    time.RFC3339Nano,
    "2006-01-02 15:04:05",
    "2006-01-02T15:04:05",
}

// ParseDate parses a listing date in any of the accepted layouts and returns
// the UTC calendar day it falls on.
func ParseDate(s string) (time.Time, bool) {
    s = strings.TrimSpace(s)
    if s == "" {
        return time.Time{}, false
    }
    for _, layout := range dateLayouts {
        if t, err := time.Parse(layout, s); err == nil {
            return TruncateDay(t), true
        }
    }
    return time.Time{}, false
}

// DateOrMax parses s or returns MaxDate when it is empty or malformed.
func DateOrMax(s string) time.Time {
    if t, ok := ParseDate(s); ok {
        return t
    }
    return MaxDate
}

// TruncateDay returns midnight UTC of the day t falls on.
func TruncateDay(t time.Time) time.Time {
    y, m, d := t.UTC().Date()
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
    return t.UTC().Format(DateLayout)
}
