package models

import (
	"fmt"
	"time"

	"github.com/jwinters/stint/internal/constants"
)

// Session represents a single timed interval of focused work, either a study
// session or a project session. Timing fields are maintained by the tracker;
// quality ratings are supplied by the user when the session ends.
type Session struct {
	ID      string                `json:"id"`
	Kind    constants.SessionKind `json:"kind"`
	Subject string                `json:"subject"`
	Date    string                `json:"date"` // YYYY-MM-DD format

	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// DurationMin is the authoritative elapsed time in whole minutes. It is
	// refreshed while the session runs and frozen by End.
	DurationMin int `json:"duration_min"`

	// ElapsedMin is the snapshot taken at the last pause, used to rebuild a
	// continuous StartTime on resume.
	ElapsedMin int  `json:"elapsed_min"`
	Active     bool `json:"active"`
	Completed  bool `json:"completed"`

	Points          int    `json:"points"`
	FocusLevel      int    `json:"focus_level,omitempty"`
	ConfidenceLevel int    `json:"confidence_level,omitempty"` // study sessions only
	Notes           string `json:"notes,omitempty"`
	ProgressNotes   string `json:"progress_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EndDetails carries the user-supplied quality ratings and notes applied when
// a session ends. Callers must validate before handing it to the tracker.
type EndDetails struct {
	FocusLevel      int    `json:"focus_level"`
	ConfidenceLevel int    `json:"confidence_level"`
	Notes           string `json:"notes,omitempty"`
	ProgressNotes   string `json:"progress_notes,omitempty"`
}

// Validate checks the quality ratings against the allowed range for the given
// session kind. Confidence is only meaningful for study sessions.
func (d *EndDetails) Validate(kind constants.SessionKind) error {
	if d.FocusLevel < constants.MinQualityLevel || d.FocusLevel > constants.MaxQualityLevel {
		return fmt.Errorf("focus level must be between %d and %d, got %d",
			constants.MinQualityLevel, constants.MaxQualityLevel, d.FocusLevel)
	}

	if kind == constants.SessionKindStudy {
		if d.ConfidenceLevel < constants.MinQualityLevel || d.ConfidenceLevel > constants.MaxQualityLevel {
			return fmt.Errorf("confidence level must be between %d and %d, got %d",
				constants.MinQualityLevel, constants.MaxQualityLevel, d.ConfidenceLevel)
		}
	} else if d.ConfidenceLevel != 0 {
		return fmt.Errorf("confidence level only applies to study sessions")
	}

	return nil
}

// HasStarted reports whether the session has ever been started.
func (s *Session) HasStarted() bool {
	return s.StartTime != nil
}

// Ended reports whether the session has an end time recorded.
func (s *Session) Ended() bool {
	return s.EndTime != nil
}
