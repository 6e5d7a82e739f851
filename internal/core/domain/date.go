package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical wire and storage format for exercise dates.
const DateLayout = "2006-01-02"

// dateLayouts are the accepted inbound formats, most specific first. A full
// ISO-8601 timestamp is accepted but its time-of-day is discarded.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayout,
}

// CanonicalDate parses an ISO-8601 date or date-time string and returns it
// normalized to YYYY-MM-DD, truncating any time component.
func CanonicalDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: invalid date %q", ErrInvalidInput, s)
}

// Today returns the current date in canonical form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
