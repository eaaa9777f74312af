package storage

import "github.com/jwinters/stint/internal/models"

// Provider is the persistence boundary for sessions and goals. Both the
// SQLite and JSON implementations satisfy it; core packages depend on the
// narrower slices of it they actually use.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Sessions
	AddSession(models.Session) error
	GetSession(id string) (models.Session, error)
	GetAllSessions() ([]models.Session, error)
	GetSessionsByDate(date string) ([]models.Session, error)
	UpdateSession(models.Session) error
	DeleteSession(id string) error

	// Goals
	AddGoal(models.Goal) error
	GetGoal(id string) (models.Goal, error)
	GetAllGoals() ([]models.Goal, error)
	GetGoalsByDate(date string) ([]models.Goal, error)
	GetUnachievedGoalsByDate(date string) ([]models.Goal, error)
	UpdateGoal(models.Goal) error
	DeleteGoal(id string) error

	// Utils
	GetConfigPath() string
}
