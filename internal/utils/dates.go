package utils

import (
	"fmt"
	"time"
)

// dateLayouts are the accepted wire formats for date fields, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a date string supplied in a payload. Payloads carry either a
// plain calendar date or a full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
