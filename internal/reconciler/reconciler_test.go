package reconciler

import (
	"fmt"
	"testing"
	"time"

	"github.com/jwinters/stint/internal/clock"
	"github.com/jwinters/stint/internal/models"
)

// fakeGoalStore keeps goals in memory and counts writes so idempotence can be
// asserted.
type fakeGoalStore struct {
	goals  map[string]models.Goal
	writes int
}

func newFakeGoalStore(goals ...models.Goal) *fakeGoalStore {
	store := &fakeGoalStore{goals: make(map[string]models.Goal)}
	for _, g := range goals {
		store.goals[g.ID] = g
	}
	return store
}

func (f *fakeGoalStore) GetAllGoals() ([]models.Goal, error) {
	var all []models.Goal
	for _, g := range f.goals {
		all = append(all, g)
	}
	return all, nil
}

func (f *fakeGoalStore) GetGoalsByDate(date string) ([]models.Goal, error) {
	var goals []models.Goal
	for _, g := range f.goals {
		if g.Date == date {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

func (f *fakeGoalStore) UpdateGoal(g models.Goal) error {
	if _, ok := f.goals[g.ID]; !ok {
		return fmt.Errorf("goal %q not found", g.ID)
	}
	f.goals[g.ID] = g
	f.writes++
	return nil
}

var today = time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

func goalOn(id, date string) models.Goal {
	return models.Goal{ID: id, Date: date, Description: "goal " + id}
}

func TestRun_FlagsOverdueGoal(t *testing.T) {
	store := newFakeGoalStore(goalOn("g1", "2026-08-23")) // 5 days ago
	rec := New(store, clock.NewFixed(today))

	result, err := rec.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Checked != 1 || result.Updated != 1 || result.Failed != 0 {
		t.Errorf("unexpected result %+v", result)
	}

	g := store.goals["g1"]
	if !g.Delayed {
		t.Error("expected goal flagged delayed")
	}
	if g.DaysDelayed != 5 {
		t.Errorf("expected 5 days delayed, got %d", g.DaysDelayed)
	}
	if g.PointsDeducted != 13 { // 5 + 4*2
		t.Errorf("expected 13 points deducted, got %d", g.PointsDeducted)
	}
}

func TestRun_FirstDayPenalty(t *testing.T) {
	store := newFakeGoalStore(goalOn("g1", "2026-08-27"))
	rec := New(store, clock.NewFixed(today))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	g := store.goals["g1"]
	if g.DaysDelayed != 1 || g.PointsDeducted != 5 {
		t.Errorf("expected 1 day / 5 pts, got %d days / %d pts", g.DaysDelayed, g.PointsDeducted)
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	store := newFakeGoalStore(
		goalOn("overdue", "2026-08-20"),
		goalOn("today", "2026-08-28"),
		goalOn("future", "2026-09-01"),
	)
	rec := New(store, clock.NewFixed(today))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	after := make(map[string]models.Goal, len(store.goals))
	for id, g := range store.goals {
		after[id] = g
	}
	writes := store.writes

	result, err := rec.Run()
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if store.writes != writes {
		t.Errorf("second pass performed %d redundant writes", store.writes-writes)
	}
	if result.Updated != 0 {
		t.Errorf("second pass reported %d updates, want 0", result.Updated)
	}
	for id, g := range store.goals {
		if g != after[id] {
			t.Errorf("goal %s changed on second pass: %+v vs %+v", id, g, after[id])
		}
	}
}

func TestRun_SkipsAchievedGoals(t *testing.T) {
	achieved := goalOn("g1", "2026-08-20")
	achieved.Achieved = true
	// Stale delay fields left by an earlier pass; reconciliation must not
	// touch them once the goal is achieved.
	achieved.Delayed = true
	achieved.DaysDelayed = 3
	achieved.PointsDeducted = 9

	store := newFakeGoalStore(achieved)
	rec := New(store, clock.NewFixed(today))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	g := store.goals["g1"]
	if g != achieved {
		t.Errorf("achieved goal was modified: %+v", g)
	}
	if store.writes != 0 {
		t.Error("achieved goals must not be written")
	}
}

func TestRun_ClearsStaleDelayState(t *testing.T) {
	stale := goalOn("g1", "2026-08-30") // future date, but flagged delayed
	stale.Delayed = true
	stale.DaysDelayed = 2
	stale.PointsDeducted = 7

	store := newFakeGoalStore(stale)
	rec := New(store, clock.NewFixed(today))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	g := store.goals["g1"]
	if g.Delayed || g.DaysDelayed != 0 || g.PointsDeducted != 0 {
		t.Errorf("expected delay state cleared, got %+v", g)
	}
}

func TestRun_TodayUnachievedLeftAlone(t *testing.T) {
	store := newFakeGoalStore(goalOn("g1", "2026-08-28"))
	rec := New(store, clock.NewFixed(today))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if store.writes != 0 {
		t.Error("an on-time unachieved goal must not be written")
	}
}

func TestRun_OnTimeGoalWestOfUTC(t *testing.T) {
	// Evening of the goal's own day in a zone behind UTC; the goal is on
	// time and must not be flagged, whatever the host zone.
	zone := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, zone)

	store := newFakeGoalStore(goalOn("g1", "2026-08-28"))
	rec := New(store, clock.NewFixed(now))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	g := store.goals["g1"]
	if g.Delayed || g.DaysDelayed != 0 || g.PointsDeducted != 0 {
		t.Errorf("on-time goal flagged delayed: %+v", g)
	}
	if store.writes != 0 {
		t.Error("an on-time goal must not be written")
	}
}

func TestRun_OverdueGoalEastOfUTC(t *testing.T) {
	// Morning after the goal's day in a zone ahead of UTC; one full
	// calendar day has passed, so the first-day penalty applies.
	zone := time.FixedZone("UTC+5:30", 5*60*60+30*60)
	now := time.Date(2026, 8, 28, 8, 0, 0, 0, zone)

	store := newFakeGoalStore(goalOn("g1", "2026-08-27"))
	rec := New(store, clock.NewFixed(now))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	g := store.goals["g1"]
	if !g.Delayed {
		t.Error("expected goal flagged delayed")
	}
	if g.DaysDelayed != 1 || g.PointsDeducted != 5 {
		t.Errorf("expected 1 day / 5 pts, got %d days / %d pts", g.DaysDelayed, g.PointsDeducted)
	}
}

func TestRun_IsolatesMalformedGoals(t *testing.T) {
	bad := goalOn("bad", "not-a-date")
	store := newFakeGoalStore(bad, goalOn("good", "2026-08-25"))
	rec := New(store, clock.NewFixed(today))

	result, err := rec.Run()
	if err != nil {
		t.Fatalf("Run must not abort on a malformed goal: %v", err)
	}

	if result.Failed != 1 {
		t.Errorf("expected 1 failed goal, got %d", result.Failed)
	}
	if !store.goals["good"].Delayed {
		t.Error("the healthy goal must still be reconciled")
	}
}

func TestRun_AchievedAfterDelayStaysCleared(t *testing.T) {
	g := goalOn("g1", "2026-08-25")
	store := newFakeGoalStore(g)
	rec := New(store, clock.NewFixed(today))

	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if store.goals["g1"].DaysDelayed != 3 {
		t.Fatalf("setup: expected 3 days delayed, got %d", store.goals["g1"].DaysDelayed)
	}

	// User marks the goal achieved; delay state clears immediately.
	done := store.goals["g1"]
	done.MarkAchieved()
	if err := store.UpdateGoal(done); err != nil {
		t.Fatal(err)
	}

	writes := store.writes
	if _, err := rec.Run(); err != nil {
		t.Fatalf("Run after achievement failed: %v", err)
	}

	g = store.goals["g1"]
	if g.Delayed || g.DaysDelayed != 0 || g.PointsDeducted != 0 {
		t.Errorf("expected achieved goal to stay cleared, got %+v", g)
	}
	if store.writes != writes {
		t.Error("reconciliation must not write an achieved goal")
	}
}

func TestVisibleGoals_UnionsOverdueWithToday(t *testing.T) {
	overdue := goalOn("overdue", "2026-08-25")
	overdue.Delayed = true
	overdue.DaysDelayed = 3
	achievedOld := goalOn("done-old", "2026-08-25")
	achievedOld.Achieved = true

	store := newFakeGoalStore(overdue, achievedOld, goalOn("today", "2026-08-28"))
	rec := New(store, clock.NewFixed(today))

	visible, err := rec.VisibleGoals("2026-08-28")
	if err != nil {
		t.Fatalf("VisibleGoals failed: %v", err)
	}

	ids := make(map[string]bool)
	for _, g := range visible {
		ids[g.ID] = true
	}

	if !ids["today"] {
		t.Error("expected today's goal to be visible")
	}
	if !ids["overdue"] {
		t.Error("expected the delayed overdue goal to surface today")
	}
	if ids["done-old"] {
		t.Error("achieved past goals must not surface")
	}
	if len(visible) != 2 {
		t.Errorf("expected exactly 2 visible goals, got %d", len(visible))
	}
}
