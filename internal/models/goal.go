package models

import (
	"fmt"
	"time"

	"github.com/jwinters/stint/internal/constants"
)

// Goal represents a daily intention. Goals that remain unachieved past their
// original date are flagged delayed by the reconciler and accrue a point
// penalty that grows with every further day.
type Goal struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD format, the day the goal was set
	Description string `json:"description"`

	Achieved bool   `json:"achieved"`
	Reason   string `json:"reason,omitempty"` // free text, why the goal was not achieved

	Delayed        bool `json:"delayed"`
	DaysDelayed    int  `json:"days_delayed"`
	PointsDeducted int  `json:"points_deducted"`

	Reminder *Reminder `json:"reminder,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Validate checks structural validity of a goal record.
func (g *Goal) Validate() error {
	if g.Description == "" {
		return fmt.Errorf("goal description cannot be empty")
	}

	if _, err := time.Parse(constants.DateFormat, g.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}

	if g.Reminder != nil {
		if err := g.Reminder.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// MarkAchieved marks the goal achieved and clears any delay state. Delay
// fields are cleared immediately rather than waiting for the next
// reconciliation pass, so achieved goals never carry a stale penalty.
func (g *Goal) MarkAchieved() {
	g.Achieved = true
	g.Reason = ""
	g.Delayed = false
	g.DaysDelayed = 0
	g.PointsDeducted = 0
}
