// Package fields extracts normalized calendar and clock fields for an
// instant, rendered either in the ambient local zone or in UTC.
package fields

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/localtime/pkg/calendar"
	"github.com/codeGROOVE-dev/localtime/pkg/constants"
)

var (
	// ErrTimezoneNameUnavailable is returned when the local zone has no
	// display name in the instant's textual form.
	ErrTimezoneNameUnavailable = errors.New("timezone name unavailable")
	// ErrMalformedField is returned when the formatter yields an hour that
	// is not a number in 0-23.
	ErrMalformedField = errors.New("malformed field")
)

// Zone selects which offset fields are rendered against.
type Zone int

// Supported zones.
const (
	Local Zone = iota
	UTC
)

func (z Zone) String() string {
	if z == UTC {
		return "utc"
	}
	return "local"
}

// Bundle holds the normalized fields of one instant in one zone.
type Bundle struct {
	Day          string `json:"day" yaml:"day"`
	Month        string `json:"month" yaml:"month"`
	MonthShort   string `json:"month_short" yaml:"month_short"`
	MonthNumeric string `json:"month_numeric" yaml:"month_numeric"`
	Year         string `json:"year" yaml:"year"`
	Weekday      string `json:"weekday" yaml:"weekday"`
	WeekdayShort string `json:"weekday_short" yaml:"weekday_short"`
	Minute       string `json:"minute" yaml:"minute"`
	Second       string `json:"second" yaml:"second"`
	Time24       string `json:"time24" yaml:"time24"`
	Time12       string `json:"time12" yaml:"time12"`
	TimezoneName string `json:"timezone_name" yaml:"timezone_name"`
	Hour24       int    `json:"hour24" yaml:"hour24"`
}

// Error records which instant failed extraction and why.
type Error struct {
	Instant time.Time
	Kind    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extracting fields for %s: %v", e.Instant.Format(time.RFC3339), e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Extract renders t through f and applies the known-defect corrections.
// Either a complete Bundle or an *Error is returned.
func Extract(f calendar.Formatter, t time.Time, zone Zone) (*Bundle, error) {
	var loc *time.Location
	if zone == UTC {
		loc = time.UTC
	}

	var firstErr error
	get := func(field calendar.Field) string {
		if firstErr != nil {
			return ""
		}
		s, err := f.Format(t, field, loc)
		if err != nil {
			firstErr = fmt.Errorf("formatting %v: %w", field, err)
		}
		return s
	}

	b := &Bundle{
		Day:          get(calendar.Day),
		Month:        get(calendar.Month),
		MonthShort:   get(calendar.MonthShort),
		MonthNumeric: get(calendar.MonthNumeric),
		Year:         get(calendar.Year),
		Weekday:      get(calendar.Weekday),
		WeekdayShort: get(calendar.WeekdayShort),
		Minute:       PadTwo(get(calendar.Minute)),
		Second:       PadTwo(get(calendar.Second)),
		Time24:       FixZeroHour(get(calendar.Time24)),
		Time12:       LowerMeridiem(FixTwelveHour(get(calendar.Time12))),
	}
	hour := FixZeroHour(get(calendar.Hour24))
	if firstErr != nil {
		return nil, &Error{Instant: t, Kind: firstErr}
	}

	h, err := strconv.Atoi(hour)
	if err != nil || h < 0 || h > 23 {
		return nil, &Error{Instant: t, Kind: fmt.Errorf("%w: hour %q", ErrMalformedField, hour)}
	}
	b.Hour24 = h

	name, err := timezoneName(f, t, zone)
	if err != nil {
		return nil, &Error{Instant: t, Kind: err}
	}
	b.TimezoneName = name

	return b, nil
}

func timezoneName(f calendar.Formatter, t time.Time, zone Zone) (string, error) {
	if zone == UTC {
		return constants.UTCZoneName, nil
	}
	desc, err := f.Describe(t, nil)
	if err != nil {
		return "", fmt.Errorf("describing instant: %w", err)
	}
	name, ok := ZoneName(desc)
	if !ok {
		return "", fmt.Errorf("%w in %q", ErrTimezoneNameUnavailable, desc)
	}
	return name, nil
}
