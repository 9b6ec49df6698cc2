package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseMoneyCents converts a decimal dollar string to int64 cents.
// Uses math.Round to avoid truncation bias. ok is false when the input is
// non-empty but unparseable; callers treat that as zero plus a warning.
func ParseMoneyCents(s string) (cents int64, ok bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}

// FormatCents renders cents as a plain decimal dollar string, e.g. 12550 → "125.50".
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// ParseUnits converts a unit-count string to an int. ok is false when the
// input is non-empty but unparseable or negative.
func ParseUnits(s string) (units int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	// some sources export units as "2.0"
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return int(v), true
}
