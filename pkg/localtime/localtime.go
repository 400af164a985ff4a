// Package localtime turns an instant into a friendly display bundle: a date,
// a time, a part-of-day label with an emoji, and the zone's display name.
package localtime

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/localtime/pkg/calendar"
	"github.com/codeGROOVE-dev/localtime/pkg/fields"
)

// Display is the human-facing rendering of one instant.
type Display struct {
	Date              string         `json:"date" yaml:"date"`
	Time              string         `json:"time" yaml:"time"`
	TimeClarification string         `json:"time_clarification" yaml:"time_clarification"`
	Emoji             string         `json:"emoji" yaml:"emoji"`
	Daytime           Period         `json:"daytime" yaml:"daytime"`
	TimezoneName      string         `json:"timezone" yaml:"timezone"`
	Parts             *fields.Bundle `json:"parts" yaml:"parts"`
}

// Option configures a Presenter.
type Option func(*OptionHolder)

// WithFormatter sets the calendar formatter used to render fields.
func WithFormatter(f calendar.Formatter) Option {
	return func(o *OptionHolder) {
		o.formatter = f
	}
}

// WithLocation overrides the zone treated as local. It has no effect when
// a custom formatter is supplied.
func WithLocation(loc *time.Location) Option {
	return func(o *OptionHolder) {
		o.location = loc
	}
}

// OptionHolder holds Presenter configuration.
type OptionHolder struct {
	formatter calendar.Formatter
	location  *time.Location
}

// DisplayOption adjusts a single Present call.
type DisplayOption func(*displayOptions)

type displayOptions struct {
	utc      bool
	showYear bool
}

// UTC renders the instant in UTC instead of the local zone.
func UTC() DisplayOption {
	return InUTC(true)
}

// InUTC renders the instant in UTC when enabled.
func InUTC(enabled bool) DisplayOption {
	return func(o *displayOptions) {
		o.utc = enabled
	}
}

// WithoutYear drops the year from the date string.
func WithoutYear() DisplayOption {
	return ShowYear(false)
}

// ShowYear controls whether the date string ends with the year.
func ShowYear(enabled bool) DisplayOption {
	return func(o *displayOptions) {
		o.showYear = enabled
	}
}

// Presenter renders instants. It keeps no state between calls and is safe
// for concurrent use.
type Presenter struct {
	formatter calendar.Formatter
	logger    *slog.Logger
}

// New creates a Presenter with the default logger.
func New(opts ...Option) *Presenter {
	return NewWithLogger(slog.Default(), opts...)
}

// NewWithLogger creates a Presenter with a custom logger.
func NewWithLogger(logger *slog.Logger, opts ...Option) *Presenter {
	optHolder := &OptionHolder{}
	for _, opt := range opts {
		opt(optHolder)
	}

	f := optHolder.formatter
	if f == nil {
		f = calendar.Std{Local: optHolder.location}
	}

	return &Presenter{
		formatter: f,
		logger:    logger,
	}
}

// Present renders t with a default Presenter using the process's local zone.
func Present(t time.Time, opts ...DisplayOption) (*Display, error) {
	return New().Present(t, opts...)
}

// Present renders t. By default it uses the local zone and includes the year.
func (p *Presenter) Present(t time.Time, opts ...DisplayOption) (*Display, error) {
	o := displayOptions{showYear: true}
	for _, opt := range opts {
		opt(&o)
	}

	zone := fields.Local
	if o.utc {
		zone = fields.UTC
	}

	parts, err := fields.Extract(p.formatter, t, zone)
	if err != nil {
		p.logger.Debug("field extraction failed", "zone", zone, "error", err)
		return nil, err
	}

	h := parts.Hour24
	period, ok := Classify(h)
	if !ok {
		// Extract guarantees 0-23.
		return nil, fmt.Errorf("hour %d outside 0-23", h)
	}

	displayTime := parts.Time24
	if h > 0 && h < 12 {
		displayTime = parts.Time12
	}

	clarification := ""
	if h == 0 || h > 12 {
		clarification = "(" + parts.Time12 + ")"
	}
	clarification = strings.TrimSpace(clarification + " " + string(period))

	date := parts.Weekday + " " + parts.MonthShort + " " + parts.Day
	if o.showYear {
		date += " " + parts.Year
	}

	return &Display{
		Date:              strings.TrimSpace(date),
		Time:              displayTime,
		TimeClarification: clarification,
		Emoji:             period.Emoji(),
		Daytime:           period,
		TimezoneName:      parts.TimezoneName,
		Parts:             parts,
	}, nil
}
