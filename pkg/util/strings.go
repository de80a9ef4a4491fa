package util

import (
    "math"
    "regexp"
    "strconv"
    "strings"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseFloatPrefix reads the leading number of s, ignoring surrounding spaces,
// a currency sign and thousands separators ("$1,250.50 est" -> 1250.5).
func ParseFloatPrefix(s string) (float64, bool) {
    s = strings.TrimSpace(s)
    s = strings.TrimPrefix(s, "$")
    s = strings.ReplaceAll(s, ",", "")
    m := numericPrefix.FindString(s)
    if m == "" {
        return 0, false
    }
    v, err := strconv.ParseFloat(m, 64)
    if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
        return 0, false
    }
    return v, true
}
