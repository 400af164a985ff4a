// Package calendar provides the locale-style date and time field formatting
// that the rest of the module builds on.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInstant is returned when a time value cannot be rendered.
var ErrInvalidInstant = errors.New("invalid instant")

// Field identifies a single calendar or clock component.
type Field int

// Fields understood by Formatter implementations.
const (
	Day Field = iota
	Month
	MonthShort
	MonthNumeric
	Year
	Weekday
	WeekdayShort
	Hour24
	Minute
	Second
	Time24
	Time12
)

var fieldNames = [...]string{
	Day:          "day",
	Month:        "month",
	MonthShort:   "month_short",
	MonthNumeric: "month_numeric",
	Year:         "year",
	Weekday:      "weekday",
	WeekdayShort: "weekday_short",
	Hour24:       "hour24",
	Minute:       "minute",
	Second:       "second",
	Time24:       "time24",
	Time12:       "time12",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// Formatter renders individual fields of an instant.
// A nil location means the formatter's ambient local zone.
type Formatter interface {
	Format(t time.Time, f Field, loc *time.Location) (string, error)
	// Describe returns the default textual form of t, which carries the
	// zone's display name in parentheses when one is known.
	Describe(t time.Time, loc *time.Location) (string, error)
}

// Std formats fields with the time package.
type Std struct {
	// Local is the ambient zone. Nil means time.Local.
	Local *time.Location
}

// Valid reports whether t can be rendered.
func Valid(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	y := t.UTC().Year()
	return y >= 1 && y <= 9999
}

func (s Std) in(t time.Time, loc *time.Location) (time.Time, error) {
	if !Valid(t) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidInstant, t.String())
	}
	if loc == nil {
		loc = s.Local
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc), nil
}

// Format implements Formatter.
func (s Std) Format(t time.Time, f Field, loc *time.Location) (string, error) {
	lt, err := s.in(t, loc)
	if err != nil {
		return "", err
	}

	switch f {
	case Day:
		return strconv.Itoa(lt.Day()), nil
	case Month:
		return lt.Month().String(), nil
	case MonthShort:
		return lt.Format("Jan"), nil
	case MonthNumeric:
		return strconv.Itoa(int(lt.Month())), nil
	case Year:
		return strconv.Itoa(lt.Year()), nil
	case Weekday:
		return lt.Weekday().String(), nil
	case WeekdayShort:
		return lt.Format("Mon"), nil
	case Hour24:
		return strconv.Itoa(lt.Hour()), nil
	case Minute:
		return strconv.Itoa(lt.Minute()), nil
	case Second:
		return strconv.Itoa(lt.Second()), nil
	case Time24:
		return fmt.Sprintf("%d:%02d", lt.Hour(), lt.Minute()), nil
	case Time12:
		return lt.Format("3:04 PM"), nil
	default:
		return "", fmt.Errorf("unsupported field %v", f)
	}
}

// Describe implements Formatter. The layout follows the common
// "Fri Nov 27 2020 12:15:00 GMT+0100 (Central European Standard Time)" form.
func (s Std) Describe(t time.Time, loc *time.Location) (string, error) {
	lt, err := s.in(t, loc)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(lt.Format("Mon Jan 02 2006 15:04:05 GMT-0700"))
	abbr, offset := lt.Zone()
	if name := LongZoneName(abbr, offset); name != "" {
		b.WriteString(" (")
		b.WriteString(name)
		b.WriteString(")")
	}
	return b.String(), nil
}
