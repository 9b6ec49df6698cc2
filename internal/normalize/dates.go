package normalize

import (
	"strings"
	"time"
)

// DateLayout is the single accepted date format for DOS and DOB fields.
const DateLayout = "2006-01-02"

// ParseDate parses a date in DateLayout. Returns nil if the input is empty
// or unparseable; callers skip date-dependent rules rather than failing.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate renders a parsed date back in DateLayout, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
