package models

import (
	"fmt"
	"time"

	"github.com/jwinters/stint/internal/constants"
)

// Reminder describes when a goal should resurface ahead of its date. The
// offset strategies are fixed variants; CustomDate carries its own date.
type Reminder struct {
	Type constants.ReminderType `json:"type"`
	Date string                 `json:"date,omitempty"` // YYYY-MM-DD, custom_date only
}

func (r *Reminder) Validate() error {
	switch r.Type {
	case constants.ReminderOneDayBefore, constants.ReminderOneWeekBefore, constants.ReminderOneMonthBefore:
		return nil
	case constants.ReminderCustomDate:
		if r.Date == "" {
			return fmt.Errorf("custom_date reminder requires a date")
		}
		if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
			return fmt.Errorf("invalid reminder date (expected YYYY-MM-DD): %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown reminder type %q", r.Type)
	}
}

// TriggerDate computes the day the reminder fires for a goal dated goalDate.
func (r *Reminder) TriggerDate(goalDate time.Time) (time.Time, error) {
	switch r.Type {
	case constants.ReminderOneDayBefore:
		return goalDate.AddDate(0, 0, -1), nil
	case constants.ReminderOneWeekBefore:
		return goalDate.AddDate(0, 0, -7), nil
	case constants.ReminderOneMonthBefore:
		return goalDate.AddDate(0, -1, 0), nil
	case constants.ReminderCustomDate:
		return time.Parse(constants.DateFormat, r.Date)
	default:
		return time.Time{}, fmt.Errorf("unknown reminder type %q", r.Type)
	}
}

// FormatReminder returns a human-readable description of the reminder.
func (r *Reminder) FormatReminder() string {
	switch r.Type {
	case constants.ReminderOneDayBefore:
		return "1 day before"
	case constants.ReminderOneWeekBefore:
		return "1 week before"
	case constants.ReminderOneMonthBefore:
		return "1 month before"
	case constants.ReminderCustomDate:
		return fmt.Sprintf("on %s", r.Date)
	default:
		return "unknown"
	}
}
