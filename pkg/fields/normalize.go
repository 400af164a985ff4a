package fields

import (
	"regexp"
	"strings"
)

// Known formatter defects and their corrections. Each step is applied to
// the raw collaborator output before it reaches a Bundle.
var (
	// Some formatters render the midnight hour of a 24-hour clock as "24".
	leadingTwentyFour = regexp.MustCompile(`^24`)
	// Some formatters render the 12 o'clock hour of a 12-hour clock as "0".
	zeroHourMeridiem = regexp.MustCompile(`(?i)^0:(\d+) (am|pm)`)
	// The zone's display name is the first parenthesized group.
	parenthesized = regexp.MustCompile(`\((.*?)\)`)
)

// FixZeroHour rewrites a leading "24" to "0", so "24:15" becomes "0:15".
func FixZeroHour(s string) string {
	return leadingTwentyFour.ReplaceAllString(s, "0")
}

// FixTwelveHour rewrites "0:MM am" and "0:MM pm" to "12:MM am" and "12:MM pm".
func FixTwelveHour(s string) string {
	return zeroHourMeridiem.ReplaceAllString(s, "12:$1 $2")
}

// LowerMeridiem lower-cases the AM/PM marker.
func LowerMeridiem(s string) string {
	return strings.NewReplacer("PM", "pm", "AM", "am").Replace(s)
}

// PadTwo left-pads s with zeros to at least two characters.
func PadTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

// ZoneName returns the content of the first parenthesized group in a
// textual time representation. An empty group counts as no name.
func ZoneName(description string) (string, bool) {
	m := parenthesized.FindStringSubmatch(description)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", false
	}
	return m[1], true
}
