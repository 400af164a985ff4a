// Package timeline renders display bundles and the day-period layout for terminals.
package timeline

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/localtime/pkg/localtime"
)

// periodColor returns the colour used for a period.
func periodColor(p localtime.Period) *color.Color {
	switch p {
	case localtime.Midnight:
		return color.New(color.FgHiBlack)
	case localtime.Night:
		return color.New(color.FgBlue)
	case localtime.Morning:
		return color.New(color.FgYellow)
	case localtime.Noon:
		return color.New(color.FgHiYellow, color.Bold)
	case localtime.Daytime:
		return color.New(color.FgCyan)
	case localtime.Evening:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.Reset)
	}
}

// Render formats a display bundle as a short block of text.
func Render(d *localtime.Display) string {
	var output strings.Builder

	c := periodColor(d.Daytime)
	output.WriteString(fmt.Sprintf("%s %s %s\n", d.Emoji, color.New(color.Bold).Sprint(d.Time), c.Sprint(d.TimeClarification)))
	output.WriteString(strings.Repeat("─", 50) + "\n")
	output.WriteString(fmt.Sprintf("📅 Date:      %s\n", d.Date))
	output.WriteString(fmt.Sprintf("🌍 Timezone:  %s\n", d.TimezoneName))
	if d.Parts != nil {
		output.WriteString(fmt.Sprintf("🕐 24-hour:   %s\n", d.Parts.Time24))
		output.WriteString(fmt.Sprintf("🕐 12-hour:   %s\n", d.Parts.Time12))
	}

	return output.String()
}

// Strip draws one line per hour of the day, coloured by period, with the
// given hour marked. Hours outside 0-23 mark nothing.
func Strip(current int) string {
	var output strings.Builder

	output.WriteString("🗓️  Day Periods (24-hour clock)\n")
	output.WriteString(strings.Repeat("─", 50) + "\n")

	for hour := range 24 {
		period, _ := localtime.Classify(hour)
		c := periodColor(period)

		line := fmt.Sprintf("%02d:00 %s ", hour, c.Sprint(strings.Repeat("█", 8)))
		line += fmt.Sprintf("%-9s", period)
		if hour == current {
			line += " ◀ " + period.Emoji()
		}
		output.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	return output.String()
}
