// Package reconciler implements the daily goal-delay pass: every goal's delay
// fields are recomputed against the current date, so overdue goals carry a
// penalty that grows until they are achieved. The pass is idempotent and
// avoids writes for goals whose state did not change.
package reconciler

import (
	"fmt"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/jwinters/stint/internal/clock"
	"github.com/jwinters/stint/internal/logger"
	"github.com/jwinters/stint/internal/models"
	"github.com/jwinters/stint/internal/scoring"
	"github.com/jwinters/stint/internal/utils"
)

// GoalStore is the slice of the storage provider the reconciler needs.
type GoalStore interface {
	GetAllGoals() ([]models.Goal, error)
	GetGoalsByDate(date string) ([]models.Goal, error)
	UpdateGoal(models.Goal) error
}

// Result summarizes a reconciliation pass.
type Result struct {
	Checked int
	Updated int
	Failed  int
}

type Reconciler struct {
	store GoalStore
	clock clock.Clock
}

func New(store GoalStore, clk clock.Clock) *Reconciler {
	return &Reconciler{store: store, clock: clk}
}

// Run reconciles the delay state of every goal against today. A failure on
// one goal is logged and counted but never aborts the pass for the rest.
func (r *Reconciler) Run() (Result, error) {
	goals, err := r.store.GetAllGoals()
	if err != nil {
		return Result{}, fmt.Errorf("failed to load goals: %w", err)
	}

	today := utils.DateOf(r.clock.Now())
	result := Result{Checked: len(goals)}

	for _, goal := range goals {
		updated, changed, err := reconcileGoal(goal, today)
		if err != nil {
			result.Failed++
			logger.Warn("skipping goal during reconciliation", "id", goal.ID, "error", err)
			continue
		}
		if !changed {
			continue
		}

		if err := r.store.UpdateGoal(updated); err != nil {
			result.Failed++
			logger.Warn("failed to persist reconciled goal", "id", goal.ID, "error", err)
			continue
		}
		result.Updated++
	}

	logger.Info("goal reconciliation finished",
		"checked", result.Checked, "updated", result.Updated, "failed", result.Failed)
	return result, nil
}

// reconcileGoal computes the goal's correct delay state for today and reports
// whether it differs from the stored state. Achieved goals are never touched;
// their historical delay fields are cleared by MarkAchieved on the user path,
// not here.
func reconcileGoal(goal models.Goal, today time.Time) (models.Goal, bool, error) {
	if goal.Achieved {
		return goal, false, nil
	}

	goalDate, err := utils.ParseDate(goal.Date)
	if err != nil {
		return goal, false, fmt.Errorf("malformed goal date %q: %w", goal.Date, err)
	}

	before, err := hashstructure.Hash(goal, hashstructure.FormatV2, nil)
	if err != nil {
		return goal, false, err
	}

	if goalDate.Before(today) {
		days := utils.WholeDaysBetween(goalDate, today)
		goal.Delayed = true
		goal.DaysDelayed = days
		goal.PointsDeducted = scoring.GoalDelayPenalty(days)
	} else if goal.Delayed {
		// Stale delay state from a backdated goal or an earlier pass.
		goal.Delayed = false
		goal.DaysDelayed = 0
		goal.PointsDeducted = 0
	}

	after, err := hashstructure.Hash(goal, hashstructure.FormatV2, nil)
	if err != nil {
		return goal, false, err
	}

	return goal, before != after, nil
}

// VisibleGoals returns the goals that should surface on the given day: those
// originally dated that day plus earlier unachieved goals currently flagged
// delayed, so overdue intentions keep showing up until resolved.
func (r *Reconciler) VisibleGoals(date string) ([]models.Goal, error) {
	dayGoals, err := r.store.GetGoalsByDate(date)
	if err != nil {
		return nil, err
	}

	all, err := r.store.GetAllGoals()
	if err != nil {
		return nil, err
	}

	visible := dayGoals
	for _, goal := range all {
		if goal.Achieved || !goal.Delayed {
			continue
		}
		if goal.Date >= date {
			continue
		}
		visible = append(visible, goal)
	}

	return visible, nil
}
