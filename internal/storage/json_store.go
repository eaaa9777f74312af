package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jwinters/stint/internal/models"
)

// Store is the on-disk layout of the JSON backend.
type Store struct {
	Version  int                       `json:"version"`
	Sessions map[string]models.Session `json:"sessions"`
	Goals    map[string]models.Goal    `json:"goals"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Sessions: make(map[string]models.Session),
		Goals:    make(map[string]models.Goal),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'stint init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Sessions == nil {
		s.store.Sessions = make(map[string]models.Session)
	}
	if s.store.Goals == nil {
		s.store.Goals = make(map[string]models.Goal)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// Sessions

func (s *JSONStore) AddSession(session models.Session) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Sessions[session.ID] = session
	return s.save()
}

func (s *JSONStore) GetSession(id string) (models.Session, error) {
	if err := s.loaded(); err != nil {
		return models.Session{}, err
	}
	session, ok := s.store.Sessions[id]
	if !ok {
		return models.Session{}, fmt.Errorf("session %q not found", id)
	}
	return session, nil
}

func (s *JSONStore) GetAllSessions() ([]models.Session, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var sessions []models.Session
	for _, session := range s.store.Sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (s *JSONStore) GetSessionsByDate(date string) ([]models.Session, error) {
	all, err := s.GetAllSessions()
	if err != nil {
		return nil, err
	}
	var sessions []models.Session
	for _, session := range all {
		if session.Date == date {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (s *JSONStore) UpdateSession(session models.Session) error {
	return s.AddSession(session)
}

func (s *JSONStore) DeleteSession(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.store.Sessions[id]; !ok {
		return fmt.Errorf("session %q not found", id)
	}
	delete(s.store.Sessions, id)
	return s.save()
}

// Goals

func (s *JSONStore) AddGoal(goal models.Goal) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Goals[goal.ID] = goal
	return s.save()
}

func (s *JSONStore) GetGoal(id string) (models.Goal, error) {
	if err := s.loaded(); err != nil {
		return models.Goal{}, err
	}
	goal, ok := s.store.Goals[id]
	if !ok {
		return models.Goal{}, fmt.Errorf("goal %q not found", id)
	}
	return goal, nil
}

func (s *JSONStore) GetAllGoals() ([]models.Goal, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var goals []models.Goal
	for _, goal := range s.store.Goals {
		goals = append(goals, goal)
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].Date != goals[j].Date {
			return goals[i].Date < goals[j].Date
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}

func (s *JSONStore) GetGoalsByDate(date string) ([]models.Goal, error) {
	all, err := s.GetAllGoals()
	if err != nil {
		return nil, err
	}
	var goals []models.Goal
	for _, goal := range all {
		if goal.Date == date {
			goals = append(goals, goal)
		}
	}
	return goals, nil
}

func (s *JSONStore) GetUnachievedGoalsByDate(date string) ([]models.Goal, error) {
	byDate, err := s.GetGoalsByDate(date)
	if err != nil {
		return nil, err
	}
	var goals []models.Goal
	for _, goal := range byDate {
		if !goal.Achieved {
			goals = append(goals, goal)
		}
	}
	return goals, nil
}

func (s *JSONStore) UpdateGoal(goal models.Goal) error {
	return s.AddGoal(goal)
}

func (s *JSONStore) DeleteGoal(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.store.Goals[id]; !ok {
		return fmt.Errorf("goal %q not found", id)
	}
	delete(s.store.Goals, id)
	return s.save()
}
