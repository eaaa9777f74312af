// Package tracker enforces the legal state transitions of a tracked work
// session and keeps its elapsed-time bookkeeping consistent. The tracker
// operates on session values and returns updated copies; persisted
// transitions are written through the injected store, while Tick stays
// transient.
package tracker

import (
	"errors"
	"time"

	"github.com/jwinters/stint/internal/clock"
	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/logger"
	"github.com/jwinters/stint/internal/models"
	"github.com/jwinters/stint/internal/scoring"
	"github.com/jwinters/stint/internal/utils"
)

// Transition guard errors. Guarded transitions are benign no-ops: the session
// is returned unchanged alongside the sentinel, and callers are free to
// ignore it.
var (
	ErrAlreadyStarted = errors.New("session has already been started")
	ErrAlreadyActive  = errors.New("session is already active")
	ErrNotActive      = errors.New("session is not active")
	ErrNotStarted     = errors.New("session has not been started")
)

// SessionStore is the slice of the storage provider the tracker needs.
type SessionStore interface {
	UpdateSession(models.Session) error
}

type Tracker struct {
	store SessionStore
	clock clock.Clock
}

func New(store SessionStore, clk clock.Clock) *Tracker {
	return &Tracker{store: store, clock: clk}
}

// Start activates a freshly created session. Restarting a session that has
// already been started is refused rather than silently re-initializing its
// timing; callers that want a new interval should create a new session.
func (t *Tracker) Start(s models.Session) (models.Session, error) {
	if s.HasStarted() {
		return s, ErrAlreadyStarted
	}

	now := t.clock.Now()
	s.StartTime = &now
	s.Active = true
	s.ElapsedMin = 0
	s.DurationMin = 0
	if s.Date == "" {
		s.Date = utils.FormatDate(now)
	}

	if err := t.store.UpdateSession(s); err != nil {
		return s, err
	}

	logger.Debug("session started", "id", s.ID, "kind", s.Kind)
	return s, nil
}

// Pause freezes the running elapsed time into the session. Pausing an
// inactive session changes nothing.
func (t *Tracker) Pause(s models.Session) (models.Session, error) {
	if !s.Active {
		return s, ErrNotActive
	}

	s.ElapsedMin = utils.MinutesBetween(*s.StartTime, t.clock.Now())
	s.DurationMin = s.ElapsedMin
	s.Active = false

	if err := t.store.UpdateSession(s); err != nil {
		return s, err
	}

	logger.Debug("session paused", "id", s.ID, "elapsed_min", s.ElapsedMin)
	return s, nil
}

// Resume reactivates a paused session. The start time is rebuilt from the
// paused snapshot so elapsed-time math stays continuous across the gap.
func (t *Tracker) Resume(s models.Session) (models.Session, error) {
	if s.Active {
		return s, ErrAlreadyActive
	}
	if !s.HasStarted() {
		return s, ErrNotStarted
	}

	start := t.clock.Now().Add(-time.Duration(s.ElapsedMin) * time.Minute)
	s.StartTime = &start
	s.Active = true

	if err := t.store.UpdateSession(s); err != nil {
		return s, err
	}

	logger.Debug("session resumed", "id", s.ID, "elapsed_min", s.ElapsedMin)
	return s, nil
}

// Tick refreshes the running elapsed time for display. It is safe to call on
// a periodic cadence; it never persists and has no effect on the final score,
// which End derives independently from wall-clock times. Ticking an inactive
// session returns it unchanged.
func (t *Tracker) Tick(s models.Session) models.Session {
	if !s.Active {
		return s
	}

	s.ElapsedMin = utils.MinutesBetween(*s.StartTime, t.clock.Now())
	s.DurationMin = s.ElapsedMin
	return s
}

// End finalizes the session: it freezes the authoritative duration from
// wall-clock start and end times, marks it completed, applies the quality
// details, and computes the point score. Ending an already-ended session is
// not an error; it recomputes duration and points so quality ratings can be
// corrected after the fact. It never reopens the session.
func (t *Tracker) End(s models.Session, details models.EndDetails) (models.Session, error) {
	if !s.HasStarted() {
		return s, ErrNotStarted
	}

	now := t.clock.Now()
	s.EndTime = &now
	s.Active = false
	s.Completed = true
	s.DurationMin = utils.MinutesBetween(*s.StartTime, *s.EndTime)

	s.FocusLevel = details.FocusLevel
	s.ConfidenceLevel = details.ConfidenceLevel
	s.Notes = details.Notes
	s.ProgressNotes = details.ProgressNotes

	s.Points = sessionPoints(s)

	if err := t.store.UpdateSession(s); err != nil {
		return s, err
	}

	logger.Info("session ended", "id", s.ID, "kind", s.Kind, "duration_min", s.DurationMin, "points", s.Points)
	return s, nil
}

// Rescore recomputes the point value of an ended session from its stored
// duration and quality fields, without touching its timing. Used when quality
// ratings are edited post-completion.
func (t *Tracker) Rescore(s models.Session) (models.Session, error) {
	if !s.Ended() {
		return s, ErrNotStarted
	}

	s.Points = sessionPoints(s)

	if err := t.store.UpdateSession(s); err != nil {
		return s, err
	}
	return s, nil
}

func sessionPoints(s models.Session) int {
	if s.Kind == constants.SessionKindProject {
		return scoring.ProjectSessionPoints(s.DurationMin, s.Completed, s.ProgressNotes != "", s.Notes != "")
	}
	return scoring.StudySessionPoints(s.DurationMin, s.FocusLevel, s.ConfidenceLevel, s.Completed)
}
