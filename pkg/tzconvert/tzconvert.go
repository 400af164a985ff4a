// Package tzconvert resolves the zone a process should treat as "local".
// Zone arithmetic itself is left to the time package; this package only
// turns configuration strings into *time.Location values.
package tzconvert

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
)

// ErrUnknownZone is returned when a zone name cannot be resolved.
var ErrUnknownZone = errors.New("unknown timezone")

var locations = otter.Must(&otter.Options[string, *time.Location]{
	MaximumSize:     1_000,
	InitialCapacity: 64,
})

// ParseOffset extracts a fixed offset in seconds east of UTC.
// Examples:
//   - "UTC" returns 0
//   - "UTC+1" returns 3600
//   - "UTC-4" returns -14400
//   - "GMT+5:30" returns 19800
//   - "UTC+0530" returns 19800
//
// ok is false for anything that is not a fixed-offset name.
func ParseOffset(name string) (offset int, ok bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var rest string
	switch {
	case upper == "Z":
		return 0, true
	case strings.HasPrefix(upper, "UTC"):
		rest = upper[3:]
	case strings.HasPrefix(upper, "GMT"):
		rest = upper[3:]
	default:
		return 0, false
	}
	if rest == "" {
		return 0, true // Plain "UTC"
	}

	// Handle the sign
	sign := 1
	switch rest[0] {
	case '-':
		sign = -1
		rest = rest[1:]
	case '+':
		rest = rest[1:]
	default:
		return 0, false
	}

	hours, minutes := rest, ""
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		hours, minutes = rest[:i], rest[i+1:]
	} else if len(rest) == 4 {
		hours, minutes = rest[:2], rest[2:]
	}

	h, ok := digits(hours, 2)
	if !ok || h > 14 {
		return 0, false
	}
	m := 0
	if minutes != "" {
		if m, ok = digits(minutes, 2); !ok || len(minutes) != 2 || m > 59 {
			return 0, false
		}
	}
	return sign * (h*3600 + m*60), true
}

// digits parses up to maxLen decimal digits.
func digits(s string, maxLen int) (int, bool) {
	if s == "" || len(s) > maxLen {
		return 0, false
	}
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

// OffsetName renders an offset in seconds as "UTC", "UTC+1" or "UTC+5:30".
func OffsetName(offset int) string {
	if offset == 0 {
		return "UTC"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	h, m := offset/3600, offset%3600/60
	if m == 0 {
		return fmt.Sprintf("UTC%c%d", sign, h)
	}
	return fmt.Sprintf("UTC%c%d:%02d", sign, h, m)
}

// Location resolves a zone name to a location.
//   - "" and "Local" return time.Local
//   - "UTC", "Z" and zero offsets return time.UTC
//   - "UTC+1", "GMT-05:30" return a fixed zone named after the offset
//   - anything else is looked up in the IANA database
//
// Resolved locations are cached for the lifetime of the process.
func Location(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}

	if offset, ok := ParseOffset(name); ok {
		if offset == 0 {
			return time.UTC, nil
		}
		return time.FixedZone(OffsetName(offset), offset), nil
	}

	if loc, found := locations.GetIfPresent(name); found {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownZone, name, err)
	}
	locations.Set(name, loc)
	return loc, nil
}

