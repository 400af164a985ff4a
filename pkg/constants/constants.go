// Package constants defines shared constants for the localtime tools.
package constants

// UTCZoneName is the display name reported whenever fields are rendered in UTC.
const UTCZoneName = "Coordinated Universal Time (UTC)"

// Version is reported by the CLI and server -version flags.
const Version = "v1.0.0"

// RateLimitPerMinute is the number of API requests a single client IP may
// make per minute before the server answers 429.
const RateLimitPerMinute = 60
