package cli

import (
	"fmt"

	"github.com/jwinters/stint/internal/backup"
	"github.com/jwinters/stint/internal/clock"
	"github.com/jwinters/stint/internal/logger"
	"github.com/jwinters/stint/internal/models"
	"github.com/jwinters/stint/internal/reconciler"
	"github.com/jwinters/stint/internal/storage"
	"github.com/jwinters/stint/internal/tracker"
	"github.com/jwinters/stint/internal/utils"
)

// Context carries the wired application services into every command.
type Context struct {
	Store      storage.Provider
	Tracker    *tracker.Tracker
	Reconciler *reconciler.Reconciler
	Clock      clock.Clock
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns the current date string per the application clock.
func (c *Context) Today() string {
	return utils.FormatDate(c.Clock.Now())
}

// ActiveSession returns the currently running session, if any.
func (c *Context) ActiveSession() (models.Session, bool, error) {
	sessions, err := c.Store.GetAllSessions()
	if err != nil {
		return models.Session{}, false, err
	}
	for _, s := range sessions {
		if s.Active {
			return s, true, nil
		}
	}
	return models.Session{}, false, nil
}

// PausedSession returns the most recently started session that is paused but
// not yet ended.
func (c *Context) PausedSession() (models.Session, bool, error) {
	sessions, err := c.Store.GetAllSessions()
	if err != nil {
		return models.Session{}, false, err
	}

	var latest models.Session
	found := false
	for _, s := range sessions {
		if s.Active || s.Completed || !s.HasStarted() {
			continue
		}
		if !found || s.StartTime.After(*latest.StartTime) {
			latest = s
			found = true
		}
	}
	return latest, found, nil
}

// CurrentSession resolves the session a timing command should act on: the
// explicit ID when given, otherwise the active session, otherwise the most
// recent paused one.
func (c *Context) CurrentSession(id string) (models.Session, error) {
	if id != "" {
		return c.ResolveSession(id)
	}

	if s, ok, err := c.ActiveSession(); err != nil {
		return models.Session{}, err
	} else if ok {
		return s, nil
	}

	if s, ok, err := c.PausedSession(); err != nil {
		return models.Session{}, err
	} else if ok {
		return s, nil
	}

	return models.Session{}, fmt.Errorf("no session in progress")
}

// ResolveSession looks a session up by full ID or unique prefix.
func (c *Context) ResolveSession(id string) (models.Session, error) {
	if s, err := c.Store.GetSession(id); err == nil {
		return s, nil
	}

	sessions, err := c.Store.GetAllSessions()
	if err != nil {
		return models.Session{}, err
	}

	var match models.Session
	count := 0
	for _, s := range sessions {
		if len(id) > 0 && len(s.ID) >= len(id) && s.ID[:len(id)] == id {
			match = s
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return models.Session{}, fmt.Errorf("session %q not found", id)
	default:
		return models.Session{}, fmt.Errorf("session ID %q is ambiguous", id)
	}
}

// ResolveGoal looks a goal up by full ID or unique prefix.
func (c *Context) ResolveGoal(id string) (models.Goal, error) {
	if g, err := c.Store.GetGoal(id); err == nil {
		return g, nil
	}

	goals, err := c.Store.GetAllGoals()
	if err != nil {
		return models.Goal{}, err
	}

	var match models.Goal
	count := 0
	for _, g := range goals {
		if len(id) > 0 && len(g.ID) >= len(id) && g.ID[:len(id)] == id {
			match = g
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return models.Goal{}, fmt.Errorf("goal %q not found", id)
	default:
		return models.Goal{}, fmt.Errorf("goal ID %q is ambiguous", id)
	}
}

// FormatSession renders a one-line summary of a session for listings.
func FormatSession(s models.Session) string {
	state := "not started"
	switch {
	case s.Completed:
		state = fmt.Sprintf("done, %d pts", s.Points)
	case s.Active:
		state = "active"
	case s.HasStarted():
		state = "paused"
	}
	return fmt.Sprintf("%-8s %-7s %-24s %6s  [%s]",
		ShortID(s.ID), s.Kind, s.Subject, utils.FormatElapsed(s.DurationMin), state)
}

// ShortID truncates an ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
