package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by ParseInstant, tried in order.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z07:00",
}

// ParseInstant parses an ISO 8601 timestamp carrying an offset, such as
// "2020-11-27T11:15:00+00:00" or "2020-11-27T11:15:00+0000".
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrInvalidInstant)
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if !Valid(t) {
				break
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, s)
}
