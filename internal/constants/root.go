package constants

const (
	AppName            = "pomoplan"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/pomoplan/pomoplan.db"
	DefaultUserID      = "default"
	Version            = "v0.1.0"

	// ConnectionEnvVar holds a PostgreSQL connection string when set
	ConnectionEnvVar = "POMOPLAN_DB_CONNECTION"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "pomoplan-"
	BackupFileSuffix = ".db"

	// Event types written to the event log
	EventSessionCompleted = "session_completed"
	EventScheduleProposed = "schedule_proposed"

	// Slot types
	SlotUnavailable  = "unavailable"
	SlotNotPreferred = "not_preferred"
)
