package system

import (
	"fmt"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/models"
	"github.com/jwinters/stint/internal/utils"
)

type DoctorCmd struct{}

// Run checks the stored records against the invariants the core relies on and
// reports anything a reconciliation pass or manual edit should fix.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	problems := 0

	sessions, err := ctx.Store.GetAllSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	fmt.Printf("Checking %d sessions and %d goals...\n", len(sessions), len(goals))

	active := 0
	for _, s := range sessions {
		if s.Active {
			active++
			if s.EndTime != nil {
				problems++
				fmt.Printf("  ✗ session %s is active but has an end time\n", cli.ShortID(s.ID))
			}
		}
		if s.Completed && s.Active {
			problems++
			fmt.Printf("  ✗ session %s is completed but still active\n", cli.ShortID(s.ID))
		}
		if s.DurationMin < 0 || s.Points < 0 {
			problems++
			fmt.Printf("  ✗ session %s has negative duration or points\n", cli.ShortID(s.ID))
		}
	}
	if active > 1 {
		problems++
		fmt.Printf("  ✗ %d sessions are active at once; only one should be\n", active)
	}

	stale := 0
	for _, g := range goals {
		if g.Achieved && (g.Delayed || g.DaysDelayed != 0 || g.PointsDeducted != 0) {
			problems++
			fmt.Printf("  ✗ goal %s is achieved but still carries delay state\n", cli.ShortID(g.ID))
		}
		if !utils.ValidateDateFormat(g.Date) {
			problems++
			fmt.Printf("  ✗ goal %s has a malformed date %q\n", cli.ShortID(g.ID), g.Date)
			continue
		}
		if needsReconciliation(g, ctx.Today()) {
			stale++
		}
	}
	if stale > 0 {
		fmt.Printf("  ! %d goals have out-of-date delay state; run 'stint reconcile'\n", stale)
	}

	if problems == 0 {
		fmt.Println("All checks passed.")
	} else {
		fmt.Printf("%d problems found.\n", problems)
	}
	return nil
}

func needsReconciliation(g models.Goal, today string) bool {
	if g.Achieved {
		return false
	}
	if g.Date < today {
		days, err := utils.WholeDaysBetweenDates(g.Date, today)
		if err != nil {
			return false
		}
		return !g.Delayed || g.DaysDelayed != days
	}
	return g.Delayed
}
