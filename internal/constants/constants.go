package constants

import "time"

const (
	AppName            = "calmher"
	DefaultKeyringUser = "database-connection"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format (HH:MM)
	TimeFormat = "15:04"

	// EventTimeFormat is the date-time layout used for scheduled events in JSON (YYYY-MM-DDTHH:MM)
	EventTimeFormat = "2006-01-02T15:04"

	// Burnout score domain
	MinBurnoutScore = 1.0
	MaxBurnoutScore = 5.0

	// MaxRangeDays caps the inclusive length of a requested schedule
	MaxRangeDays = 366

	// Calendar categories
	CategoryWellness  = "Wellness"
	CategoryOriginal  = "Original"
	CalendarProductID = "-//calmher//Wellness Schedule//EN"

	// EmptyScheduleReason is reported when a schedule contains no events
	EmptyScheduleReason = "no safe slots found given preferences/conflicts"

	// Storage drivers
	DriverNone     = "none"
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverKafka    = "kafka"

	DefaultServerAddr     = ":5000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultKafkaTopic     = "calmher.schedules"
)
