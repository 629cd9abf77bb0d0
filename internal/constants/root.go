package constants

import "time"

const (
	AppName = "adhan"
	Version = "v0.1.0"

	// DefaultBaseURL is the prayer-times backend used when no override is configured
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultCity    = "Toronto"
	DefaultCountry = "Canada"
	DefaultLogDir  = "~/.config/adhan"
	DefaultEnvFile = ".env"

	// Backend endpoints, relative to the base URL
	TodayPath    = "/today"
	DayLabelPath = "/ramadan/day"

	RequestIDHeader = "X-Request-ID"

	// TimeFormat is the 24h display format (HH:MM)
	TimeFormat = "15:04"

	// ClockFormat is the TUI wall-clock format
	ClockFormat = "15:04:05"

	// TickInterval drives the display refresh
	TickInterval = time.Second
)
