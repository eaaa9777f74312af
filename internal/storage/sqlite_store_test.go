package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "stint.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSession(id, date string) models.Session {
	start := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	return models.Session{
		ID:        id,
		Kind:      constants.SessionKindStudy,
		Subject:   "calculus",
		Date:      date,
		StartTime: &start,
		Active:    true,
		CreatedAt: start,
	}
}

func TestSQLiteStore_SessionLifecycle(t *testing.T) {
	store := newTestSQLiteStore(t)

	session := testSession("s1", "2026-08-28")
	if err := store.AddSession(session); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}

	got, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Subject != "calculus" || !got.Active {
		t.Errorf("unexpected session: %+v", got)
	}
	if got.StartTime == nil || !got.StartTime.Equal(*session.StartTime) {
		t.Errorf("start time not round-tripped: %v", got.StartTime)
	}
	if got.EndTime != nil {
		t.Errorf("expected unset end time, got %v", got.EndTime)
	}

	end := time.Date(2026, 8, 28, 9, 45, 0, 0, time.UTC)
	got.EndTime = &end
	got.Active = false
	got.Completed = true
	got.DurationMin = 45
	got.Points = 79
	if err := store.UpdateSession(got); err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}

	updated, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession after update failed: %v", err)
	}
	if !updated.Completed || updated.Points != 79 || updated.DurationMin != 45 {
		t.Errorf("update not persisted: %+v", updated)
	}

	if err := store.DeleteSession("s1"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := store.GetSession("s1"); err == nil {
		t.Error("expected error fetching deleted session")
	}
	if err := store.DeleteSession("s1"); err == nil {
		t.Error("expected error deleting a missing session")
	}
}

func TestSQLiteStore_SessionsByDate(t *testing.T) {
	store := newTestSQLiteStore(t)

	for _, s := range []models.Session{
		testSession("a", "2026-08-27"),
		testSession("b", "2026-08-28"),
		testSession("c", "2026-08-28"),
	} {
		if err := store.AddSession(s); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := store.GetSessionsByDate("2026-08-28")
	if err != nil {
		t.Fatalf("GetSessionsByDate failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions on 2026-08-28, got %d", len(sessions))
	}
}

func TestSQLiteStore_GoalLifecycle(t *testing.T) {
	store := newTestSQLiteStore(t)

	goal := models.Goal{
		ID:          "g1",
		Date:        "2026-08-28",
		Description: "review flashcards",
		Reminder:    &models.Reminder{Type: constants.ReminderOneDayBefore},
		CreatedAt:   time.Date(2026, 8, 27, 20, 0, 0, 0, time.UTC),
	}
	if err := store.AddGoal(goal); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	got, err := store.GetGoal("g1")
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if got.Description != "review flashcards" || got.Achieved {
		t.Errorf("unexpected goal: %+v", got)
	}
	if got.Reminder == nil || got.Reminder.Type != constants.ReminderOneDayBefore {
		t.Errorf("reminder not round-tripped: %+v", got.Reminder)
	}

	got.Delayed = true
	got.DaysDelayed = 2
	got.PointsDeducted = 7
	if err := store.UpdateGoal(got); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	updated, _ := store.GetGoal("g1")
	if !updated.Delayed || updated.DaysDelayed != 2 || updated.PointsDeducted != 7 {
		t.Errorf("delay fields not persisted: %+v", updated)
	}

	if err := store.DeleteGoal("g1"); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if _, err := store.GetGoal("g1"); err == nil {
		t.Error("expected error fetching deleted goal")
	}
}

func TestSQLiteStore_UnachievedGoalsByDate(t *testing.T) {
	store := newTestSQLiteStore(t)

	done := models.Goal{ID: "done", Date: "2026-08-28", Description: "d", Achieved: true, CreatedAt: time.Now().UTC()}
	open := models.Goal{ID: "open", Date: "2026-08-28", Description: "o", CreatedAt: time.Now().UTC()}
	other := models.Goal{ID: "other", Date: "2026-08-27", Description: "x", CreatedAt: time.Now().UTC()}

	for _, g := range []models.Goal{done, open, other} {
		if err := store.AddGoal(g); err != nil {
			t.Fatal(err)
		}
	}

	goals, err := store.GetUnachievedGoalsByDate("2026-08-28")
	if err != nil {
		t.Fatalf("GetUnachievedGoalsByDate failed: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != "open" {
		t.Errorf("expected only the open goal, got %+v", goals)
	}
}

func TestSQLiteStore_InitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stint.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	_ = store.Close()

	if err := NewSQLiteStore(path).Init(); err == nil {
		t.Error("expected Init to refuse an existing store")
	}
}

func TestSQLiteStore_LoadRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail before Init")
	}
}
