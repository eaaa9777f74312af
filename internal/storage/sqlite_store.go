package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id               TEXT PRIMARY KEY,
	kind             TEXT NOT NULL,
	subject          TEXT NOT NULL,
	date             TEXT NOT NULL,
	start_time       TEXT,
	end_time         TEXT,
	duration_min     INTEGER NOT NULL DEFAULT 0,
	elapsed_min      INTEGER NOT NULL DEFAULT 0,
	active           INTEGER NOT NULL DEFAULT 0,
	completed        INTEGER NOT NULL DEFAULT 0,
	points           INTEGER NOT NULL DEFAULT 0,
	focus_level      INTEGER NOT NULL DEFAULT 0,
	confidence_level INTEGER NOT NULL DEFAULT 0,
	notes            TEXT NOT NULL DEFAULT '',
	progress_notes   TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);

CREATE TABLE IF NOT EXISTS goals (
	id              TEXT PRIMARY KEY,
	date            TEXT NOT NULL,
	description     TEXT NOT NULL,
	achieved        INTEGER NOT NULL DEFAULT 0,
	reason          TEXT NOT NULL DEFAULT '',
	delayed         INTEGER NOT NULL DEFAULT 0,
	days_delayed    INTEGER NOT NULL DEFAULT 0,
	points_deducted INTEGER NOT NULL DEFAULT 0,
	reminder_type   TEXT NOT NULL DEFAULT '',
	reminder_date   TEXT NOT NULL DEFAULT '',
	created_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_goals_date ON goals(date);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'stint init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// Sessions

func (s *SQLiteStore) AddSession(session models.Session) error {
	return s.UpdateSession(session)
}

const sessionColumns = `id, kind, subject, date, start_time, end_time, duration_min, elapsed_min,
	active, completed, points, focus_level, confidence_level, notes, progress_notes, created_at`

func (s *SQLiteStore) GetSession(id string) (models.Session, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

func (s *SQLiteStore) GetAllSessions() ([]models.Session, error) {
	return s.querySessions(`SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at`)
}

func (s *SQLiteStore) GetSessionsByDate(date string) ([]models.Session, error) {
	return s.querySessions(`SELECT `+sessionColumns+` FROM sessions WHERE date = ? ORDER BY created_at`, date)
}

func (s *SQLiteStore) querySessions(query string, args ...any) ([]models.Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (models.Session, error) {
	var sess models.Session
	var startTime, endTime sql.NullString
	var createdAt string

	err := row.Scan(
		&sess.ID, &sess.Kind, &sess.Subject, &sess.Date, &startTime, &endTime,
		&sess.DurationMin, &sess.ElapsedMin, &sess.Active, &sess.Completed, &sess.Points,
		&sess.FocusLevel, &sess.ConfidenceLevel, &sess.Notes, &sess.ProgressNotes, &createdAt,
	)
	if err != nil {
		return models.Session{}, err
	}

	if startTime.Valid {
		t, err := time.Parse(time.RFC3339, startTime.String)
		if err != nil {
			return models.Session{}, fmt.Errorf("failed to parse start_time: %w", err)
		}
		sess.StartTime = &t
	}
	if endTime.Valid {
		t, err := time.Parse(time.RFC3339, endTime.String)
		if err != nil {
			return models.Session{}, fmt.Errorf("failed to parse end_time: %w", err)
		}
		sess.EndTime = &t
	}
	sess.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return sess, nil
}

func (s *SQLiteStore) UpdateSession(session models.Session) error {
	var startTime, endTime any
	if session.StartTime != nil {
		startTime = session.StartTime.Format(time.RFC3339)
	}
	if session.EndTime != nil {
		endTime = session.EndTime.Format(time.RFC3339)
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			subject = excluded.subject,
			date = excluded.date,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			duration_min = excluded.duration_min,
			elapsed_min = excluded.elapsed_min,
			active = excluded.active,
			completed = excluded.completed,
			points = excluded.points,
			focus_level = excluded.focus_level,
			confidence_level = excluded.confidence_level,
			notes = excluded.notes,
			progress_notes = excluded.progress_notes`,
		session.ID, string(session.Kind), session.Subject, session.Date, startTime, endTime,
		session.DurationMin, session.ElapsedMin, session.Active, session.Completed, session.Points,
		session.FocusLevel, session.ConfidenceLevel, session.Notes, session.ProgressNotes,
		session.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) DeleteSession(id string) error {
	result, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("session %q not found", id)
	}
	return nil
}

// Goals

const goalColumns = `id, date, description, achieved, reason, delayed, days_delayed,
	points_deducted, reminder_type, reminder_date, created_at`

func (s *SQLiteStore) AddGoal(goal models.Goal) error {
	return s.UpdateGoal(goal)
}

func (s *SQLiteStore) GetGoal(id string) (models.Goal, error) {
	row := s.db.QueryRow(`SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	return scanGoal(row)
}

func (s *SQLiteStore) GetAllGoals() ([]models.Goal, error) {
	return s.queryGoals(`SELECT ` + goalColumns + ` FROM goals ORDER BY date, created_at`)
}

func (s *SQLiteStore) GetGoalsByDate(date string) ([]models.Goal, error) {
	return s.queryGoals(`SELECT `+goalColumns+` FROM goals WHERE date = ? ORDER BY created_at`, date)
}

func (s *SQLiteStore) GetUnachievedGoalsByDate(date string) ([]models.Goal, error) {
	return s.queryGoals(`SELECT `+goalColumns+` FROM goals WHERE date = ? AND achieved = 0 ORDER BY created_at`, date)
}

func (s *SQLiteStore) queryGoals(query string, args ...any) ([]models.Goal, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	var reminderType, reminderDate, createdAt string

	err := row.Scan(
		&g.ID, &g.Date, &g.Description, &g.Achieved, &g.Reason,
		&g.Delayed, &g.DaysDelayed, &g.PointsDeducted,
		&reminderType, &reminderDate, &createdAt,
	)
	if err != nil {
		return models.Goal{}, err
	}

	if reminderType != "" {
		g.Reminder = &models.Reminder{
			Type: constants.ReminderType(reminderType),
			Date: reminderDate,
		}
	}
	g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Goal{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return g, nil
}

func (s *SQLiteStore) UpdateGoal(goal models.Goal) error {
	var reminderType, reminderDate string
	if goal.Reminder != nil {
		reminderType = string(goal.Reminder.Type)
		reminderDate = goal.Reminder.Date
	}

	_, err := s.db.Exec(`
		INSERT INTO goals (`+goalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			description = excluded.description,
			achieved = excluded.achieved,
			reason = excluded.reason,
			delayed = excluded.delayed,
			days_delayed = excluded.days_delayed,
			points_deducted = excluded.points_deducted,
			reminder_type = excluded.reminder_type,
			reminder_date = excluded.reminder_date`,
		goal.ID, goal.Date, goal.Description, goal.Achieved, goal.Reason,
		goal.Delayed, goal.DaysDelayed, goal.PointsDeducted,
		reminderType, reminderDate, goal.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) DeleteGoal(id string) error {
	result, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("goal %q not found", id)
	}
	return nil
}
