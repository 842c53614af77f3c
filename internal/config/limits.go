package config

const (
	// MaxActionLength is the maximum length for activity-log action names.
	// Limited to 100 to fit in PostgreSQL VARCHAR(100); actions are short
	// machine-readable tags.
	MaxActionLength = 100

	// MaxEntityTypeLength is the maximum length for activity-log entity
	// types. Same reasoning as action names.
	MaxEntityTypeLength = 100

	// MaxLogFiles is how many timestamped server log files to keep when
	// file logging is enabled.
	MaxLogFiles = 10
)
