package localtime

// Period is a qualitative part of the day.
type Period string

// The six periods. Every hour 0-23 belongs to exactly one of them.
const (
	Midnight Period = "midnight"
	Night    Period = "night"
	Morning  Period = "morning"
	Noon     Period = "noon"
	Daytime  Period = "daytime"
	Evening  Period = "evening"
)

// Periods lists every Period in classification order.
var Periods = []Period{Midnight, Night, Morning, Noon, Daytime, Evening}

var periodEmoji = map[Period]string{
	Midnight: "🌚",
	Night:    "🌙",
	Morning:  "🌅",
	Noon:     "☀️",
	Daytime:  "🏙️",
	Evening:  "🌆",
}

// Emoji returns the glyph shown next to the period.
func (p Period) Emoji() string {
	return periodEmoji[p]
}

func (p Period) String() string {
	return string(p)
}

// periodRule matches hours to a period. Rules are evaluated in order and
// the first match wins.
type periodRule struct {
	matches func(h int) bool
	period  Period
}

var periodRules = []periodRule{
	{func(h int) bool { return h == 0 }, Midnight},
	{func(h int) bool { return (h > 0 && h < 5) || h == 23 }, Night},
	{func(h int) bool { return h >= 5 && h < 10 }, Morning},
	{func(h int) bool { return h == 12 }, Noon},
	{func(h int) bool { return h >= 10 && h < 17 }, Daytime},
	{func(h int) bool { return h >= 17 }, Evening},
}

// Classify returns the period for an hour of a 24-hour clock.
// ok is false for hours outside 0-23.
func Classify(hour int) (Period, bool) {
	if hour < 0 || hour > 23 {
		return "", false
	}
	for _, rule := range periodRules {
		if rule.matches(hour) {
			return rule.period, true
		}
	}
	return "", false
}
