package constants

// SessionKind represents the kind of tracked session
type SessionKind string

// ReminderType represents the reminder offset strategy for a goal
type ReminderType string

const (
	AppName           = "stint"
	DefaultConfigPath = "~/.config/stint/stint.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the standard wall-clock format used for display (HH:MM)
	ClockFormat = "15:04"

	// Session Kind constants
	SessionKindStudy   SessionKind = "study"
	SessionKindProject SessionKind = "project"

	// Quality rating bounds (focus and confidence levels)
	MinQualityLevel = 1
	MaxQualityLevel = 5

	// Scoring constants
	MinutesPerBasePoint    = 10
	MaxBasePoints          = 60
	FocusBonusStep         = 15
	FocusPenaltyStep       = 20
	ConfidenceBonusStep    = 5
	StudyCompletionBonus   = 20
	ProjectCompletionBonus = 30
	ProgressNotesBonus     = 20
	NotesBonus             = 10
	FirstDayDelayPenalty   = 5
	ExtraDayDelayPenalty   = 2

	// Reminder type constants
	ReminderOneDayBefore   ReminderType = "one_day_before"
	ReminderOneWeekBefore  ReminderType = "one_week_before"
	ReminderOneMonthBefore ReminderType = "one_month_before"
	ReminderCustomDate     ReminderType = "custom_date"

	// Timer lockfile
	TimerLockfileName = "stint-timer.lock"
)
