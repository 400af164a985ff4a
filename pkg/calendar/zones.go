package calendar

import "strings"

// zoneName maps an abbreviation to its long form. Some abbreviations are
// shared by unrelated zones, so an offset (seconds east of UTC) may be
// given to pick the right one; anyOffset matches every offset.
type zoneName struct {
	name   string
	offset int
}

const anyOffset = -1 << 31

var longZoneNames = map[string][]zoneName{
	"UTC":  {{"Coordinated Universal Time", anyOffset}},
	"GMT":  {{"Greenwich Mean Time", anyOffset}},
	"BST":  {{"British Summer Time", 3600}},
	"IST":  {{"India Standard Time", 19800}, {"Irish Standard Time", 3600}, {"Israel Standard Time", 7200}},
	"WET":  {{"Western European Standard Time", anyOffset}},
	"WEST": {{"Western European Summer Time", anyOffset}},
	"CET":  {{"Central European Standard Time", anyOffset}},
	"CEST": {{"Central European Summer Time", anyOffset}},
	"EET":  {{"Eastern European Standard Time", anyOffset}},
	"EEST": {{"Eastern European Summer Time", anyOffset}},
	"MSK":  {{"Moscow Standard Time", anyOffset}},
	"SAST": {{"South Africa Standard Time", anyOffset}},
	"IDT":  {{"Israel Daylight Time", anyOffset}},
	"PKT":  {{"Pakistan Standard Time", anyOffset}},
	"WIB":  {{"Western Indonesia Time", anyOffset}},
	"HKT":  {{"Hong Kong Standard Time", anyOffset}},
	"CST":  {{"Central Standard Time", -21600}, {"China Standard Time", 28800}, {"Cuba Standard Time", -18000}},
	"CDT":  {{"Central Daylight Time", -18000}, {"Cuba Daylight Time", -14400}},
	"JST":  {{"Japan Standard Time", anyOffset}},
	"KST":  {{"Korean Standard Time", anyOffset}},
	"AWST": {{"Australian Western Standard Time", anyOffset}},
	"ACST": {{"Australian Central Standard Time", anyOffset}},
	"ACDT": {{"Australian Central Daylight Time", anyOffset}},
	"AEST": {{"Australian Eastern Standard Time", anyOffset}},
	"AEDT": {{"Australian Eastern Daylight Time", anyOffset}},
	"NZST": {{"New Zealand Standard Time", anyOffset}},
	"NZDT": {{"New Zealand Daylight Time", anyOffset}},
	"AST":  {{"Atlantic Standard Time", -14400}, {"Arabian Standard Time", 10800}},
	"ADT":  {{"Atlantic Daylight Time", anyOffset}},
	"EST":  {{"Eastern Standard Time", anyOffset}},
	"EDT":  {{"Eastern Daylight Time", anyOffset}},
	"MST":  {{"Mountain Standard Time", anyOffset}},
	"MDT":  {{"Mountain Daylight Time", anyOffset}},
	"PST":  {{"Pacific Standard Time", -28800}, {"Philippine Standard Time", 28800}},
	"PDT":  {{"Pacific Daylight Time", anyOffset}},
	"AKST": {{"Alaska Standard Time", anyOffset}},
	"AKDT": {{"Alaska Daylight Time", anyOffset}},
	"HST":  {{"Hawaii-Aleutian Standard Time", anyOffset}},
	"NST":  {{"Newfoundland Standard Time", anyOffset}},
	"NDT":  {{"Newfoundland Daylight Time", anyOffset}},
}

// LongZoneName returns a display name for a zone abbreviation as reported
// by time.Time.Zone. Unknown abbreviations are returned unchanged and an
// empty abbreviation yields "".
func LongZoneName(abbr string, offset int) string {
	abbr = strings.TrimSpace(abbr)
	if abbr == "" {
		return ""
	}
	names, ok := longZoneNames[strings.ToUpper(abbr)]
	if !ok {
		return abbr
	}
	for _, n := range names {
		if n.offset == offset {
			return n.name
		}
	}
	for _, n := range names {
		if n.offset == anyOffset {
			return n.name
		}
	}
	return abbr
}
