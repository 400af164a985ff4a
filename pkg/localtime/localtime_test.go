package localtime

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/codeGROOVE-dev/localtime/pkg/calendar"
	"github.com/codeGROOVE-dev/localtime/pkg/constants"
	"github.com/codeGROOVE-dev/localtime/pkg/fields"
)

var cet = time.FixedZone("CET", 3600)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	instant, err := calendar.ParseInstant(s)
	if err != nil {
		t.Fatalf("ParseInstant(%q) error: %v", s, err)
	}
	return instant
}

func TestClassifyPartition(t *testing.T) {
	want := map[Period][]int{
		Midnight: {0},
		Night:    {1, 2, 3, 4, 23},
		Morning:  {5, 6, 7, 8, 9},
		Noon:     {12},
		Daytime:  {10, 11, 13, 14, 15, 16},
		Evening:  {17, 18, 19, 20, 21, 22},
	}

	got := make(map[Period][]int)
	for h := range 24 {
		period, ok := Classify(h)
		if !ok {
			t.Fatalf("Classify(%d) not classified", h)
		}
		got[period] = append(got[period], h)
	}
	for _, p := range Periods {
		if p.Emoji() == "" {
			t.Errorf("Period %q has no emoji", p)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classify partition mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	for _, h := range []int{-1, 24, 100} {
		if p, ok := Classify(h); ok {
			t.Errorf("Classify(%d) = %q, want not ok", h, p)
		}
	}
}

func TestPeriodEmoji(t *testing.T) {
	tests := []struct {
		period Period
		want   string
	}{
		{Midnight, "🌚"},
		{Night, "🌙"},
		{Morning, "🌅"},
		{Noon, "☀️"},
		{Daytime, "🏙️"},
		{Evening, "🌆"},
		{Period("brunch"), ""},
	}
	for _, tt := range tests {
		if got := tt.period.Emoji(); got != tt.want {
			t.Errorf("%q.Emoji() = %q, want %q", tt.period, got, tt.want)
		}
	}
}

func TestPresentScenarios(t *testing.T) {
	tests := []struct {
		name    string
		instant string
		opts    []DisplayOption
		want    Display
	}{
		{
			name:    "noon",
			instant: "2020-11-27T11:15:00+00:00",
			want: Display{
				Date: "Friday Nov 27 2020", Time: "12:15", TimeClarification: "noon",
				Emoji: "☀️", Daytime: Noon, TimezoneName: "Central European Standard Time",
			},
		},
		{
			name:    "morning",
			instant: "2020-11-27T09:30:00+01:00",
			want: Display{
				Date: "Friday Nov 27 2020", Time: "9:30 am", TimeClarification: "morning",
				Emoji: "🌅", Daytime: Morning, TimezoneName: "Central European Standard Time",
			},
		},
		{
			name:    "utc daytime",
			instant: "2020-11-27T15:02:00+01:00",
			opts:    []DisplayOption{UTC()},
			want: Display{
				Date: "Friday Nov 27 2020", Time: "14:02", TimeClarification: "(2:02 pm) daytime",
				Emoji: "🏙️", Daytime: Daytime, TimezoneName: constants.UTCZoneName,
			},
		},
		{
			name:    "night after new year",
			instant: "2020-12-31T22:50:00-02:00",
			want: Display{
				Date: "Friday Jan 1 2021", Time: "1:50 am", TimeClarification: "night",
				Emoji: "🌙", Daytime: Night, TimezoneName: "Central European Standard Time",
			},
		},
		{
			name:    "evening without year",
			instant: "2020-12-30T20:50:00+03:00",
			opts:    []DisplayOption{WithoutYear()},
			want: Display{
				Date: "Wednesday Dec 30", Time: "18:50", TimeClarification: "(6:50 pm) evening",
				Emoji: "🌆", Daytime: Evening, TimezoneName: "Central European Standard Time",
			},
		},
		{
			name:    "midnight",
			instant: "2020-12-31T23:00:00+00:00",
			want: Display{
				Date: "Friday Jan 1 2021", Time: "0:00", TimeClarification: "(12:00 am) midnight",
				Emoji: "🌚", Daytime: Midnight, TimezoneName: "Central European Standard Time",
			},
		},
	}

	p := New(WithLocation(cet))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Present(mustParse(t, tt.instant), tt.opts...)
			if err != nil {
				t.Fatalf("Present() error: %v", err)
			}
			if got.Parts == nil {
				t.Fatal("Present() returned no parts")
			}
			if diff := cmp.Diff(tt.want, *got, cmpopts.IgnoreFields(Display{}, "Parts")); diff != "" {
				t.Errorf("Present() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPresentParts(t *testing.T) {
	got, err := New(WithLocation(cet)).Present(mustParse(t, "2020-12-31T22:50:00-02:00"))
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if got.Parts.Hour24 != 1 || got.Parts.Weekday != "Friday" || got.Parts.MonthShort != "Jan" ||
		got.Parts.Day != "1" || got.Parts.Year != "2021" {
		t.Errorf("Parts = %+v, want Friday Jan 1 2021 hour 1", got.Parts)
	}
}

func TestPresentLaws(t *testing.T) {
	p := New(WithLocation(time.UTC))
	yearToken := regexp.MustCompile(`\b\d{4}\b`)
	start := time.Date(2021, 6, 15, 0, 7, 0, 0, time.UTC)

	for h := range 24 {
		instant := start.Add(time.Duration(h) * time.Hour)
		for _, showYear := range []bool{true, false} {
			d, err := p.Present(instant, ShowYear(showYear))
			if err != nil {
				t.Fatalf("Present(%v) error: %v", instant, err)
			}
			if d.Parts.Hour24 != h {
				t.Fatalf("Hour24 = %d, want %d", d.Parts.Hour24, h)
			}

			if usesTwelve := d.Time == d.Parts.Time12; usesTwelve != (h > 0 && h < 12) {
				t.Errorf("hour %d: time %q, twelve-hour form used = %v", h, d.Time, usesTwelve)
			}
			if hasPrefix := strings.HasPrefix(d.TimeClarification, "("); hasPrefix != (h == 0 || h > 12) {
				t.Errorf("hour %d: clarification %q prefix present = %v", h, d.TimeClarification, hasPrefix)
			}
			if !strings.HasSuffix(d.TimeClarification, string(d.Daytime)) {
				t.Errorf("hour %d: clarification %q does not end with %q", h, d.TimeClarification, d.Daytime)
			}
			if d.TimeClarification != strings.TrimSpace(d.TimeClarification) {
				t.Errorf("hour %d: clarification %q has surrounding whitespace", h, d.TimeClarification)
			}
			if d.Emoji != d.Daytime.Emoji() {
				t.Errorf("hour %d: emoji %q does not match %q", h, d.Emoji, d.Daytime)
			}
			if strings.HasSuffix(d.Date, " ") {
				t.Errorf("date %q has trailing space", d.Date)
			}
			if !showYear && yearToken.MatchString(d.Date) {
				t.Errorf("date %q contains a year", d.Date)
			}
		}
	}
}

func TestPresentIdempotent(t *testing.T) {
	p := New(WithLocation(cet))
	instant := mustParse(t, "2020-12-30T20:50:00+03:00")

	first, err := p.Present(instant, WithoutYear())
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	second, err := p.Present(instant, WithoutYear())
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if first == second || first.Parts == second.Parts {
		t.Error("Present() reused a previous result")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Present() not idempotent (-first +second):\n%s", diff)
	}
}

func TestPresentConcurrent(t *testing.T) {
	p := New(WithLocation(cet))
	instant := mustParse(t, "2020-11-27T11:15:00+00:00")
	want, err := p.Present(instant)
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Present(instant)
			if err != nil {
				errs <- err.Error()
				return
			}
			if diff := cmp.Diff(want, got); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

// quirkyFormatter reproduces a formatter that renders midnight as "24" and
// twelve o'clock as "0" on a 12-hour clock.
type quirkyFormatter struct {
	calendar.Std
}

func (q quirkyFormatter) Format(t time.Time, f calendar.Field, loc *time.Location) (string, error) {
	s, err := q.Std.Format(t, f, loc)
	if err != nil {
		return "", err
	}
	switch f {
	case calendar.Hour24, calendar.Time24:
		if strings.HasPrefix(s, "0") {
			s = "24" + s[1:]
		}
	case calendar.Time12:
		if strings.HasPrefix(s, "12:") {
			s = "0:" + s[3:]
		}
	default:
	}
	return s, nil
}

func TestPresentCorrectsQuirks(t *testing.T) {
	p := New(WithFormatter(quirkyFormatter{calendar.Std{Local: cet}}))

	midnight, err := p.Present(mustParse(t, "2020-12-31T23:00:00+00:00"))
	if err != nil {
		t.Fatalf("Present(midnight) error: %v", err)
	}
	if midnight.Time != "0:00" || midnight.TimeClarification != "(12:00 am) midnight" {
		t.Errorf("midnight = %q %q, want 0:00 (12:00 am) midnight", midnight.Time, midnight.TimeClarification)
	}

	noon, err := p.Present(mustParse(t, "2020-11-27T11:40:00+00:00"))
	if err != nil {
		t.Fatalf("Present(noon) error: %v", err)
	}
	if noon.Parts.Time12 != "12:40 pm" || noon.Daytime != Noon {
		t.Errorf("noon = %q %q, want 12:40 pm noon", noon.Parts.Time12, noon.Daytime)
	}
}

func TestPresentErrors(t *testing.T) {
	t.Run("invalid instant", func(t *testing.T) {
		d, err := New(WithLocation(cet)).Present(time.Time{})
		if d != nil {
			t.Errorf("Present() returned %+v with error", d)
		}
		if !errors.Is(err, calendar.ErrInvalidInstant) {
			t.Errorf("Present() error = %v, want ErrInvalidInstant", err)
		}
	})

	t.Run("timezone name unavailable", func(t *testing.T) {
		p := New(WithLocation(time.FixedZone("", 3600)))
		instant := mustParse(t, "2020-11-27T11:15:00+00:00")
		d, err := p.Present(instant)
		if d != nil {
			t.Errorf("Present() returned %+v with error", d)
		}
		if !errors.Is(err, fields.ErrTimezoneNameUnavailable) {
			t.Errorf("Present() error = %v, want ErrTimezoneNameUnavailable", err)
		}

		// UTC never needs the local zone's name.
		if _, err := p.Present(instant, UTC()); err != nil {
			t.Errorf("Present(UTC) error: %v", err)
		}
	})
}

func TestPackagePresent(t *testing.T) {
	d, err := Present(time.Date(2020, 11, 27, 15, 2, 0, 0, time.UTC), UTC(), WithoutYear())
	if err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if d.Date != "Friday Nov 27" || d.Time != "15:02" {
		t.Errorf("Present() = %q %q, want Friday Nov 27 15:02", d.Date, d.Time)
	}
}
