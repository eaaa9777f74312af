package cli

import (
	"fmt"

	"github.com/jwinters/stint/internal/utils"
)

type StatsCmd struct {
	Date string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
}

// Run prints the day's score: points earned across sessions minus the delay
// penalties of goals still visible that day.
func (c *StatsCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	} else if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}

	sessions, err := ctx.Store.GetSessionsByDate(date)
	if err != nil {
		return err
	}

	earned := 0
	minutes := 0
	completed := 0
	for _, s := range sessions {
		earned += s.Points
		minutes += s.DurationMin
		if s.Completed {
			completed++
		}
	}

	goals, err := ctx.Reconciler.VisibleGoals(date)
	if err != nil {
		return err
	}

	deducted := 0
	achieved := 0
	for _, g := range goals {
		deducted += g.PointsDeducted
		if g.Achieved {
			achieved++
		}
	}

	fmt.Printf("Stats for %s\n", date)
	fmt.Printf("  Sessions:  %d (%d completed), %s worked\n",
		len(sessions), completed, utils.FormatElapsed(minutes))
	fmt.Printf("  Goals:     %d/%d achieved\n", achieved, len(goals))
	fmt.Printf("  Earned:    %d pts\n", earned)
	fmt.Printf("  Deducted:  %d pts\n", deducted)
	fmt.Printf("  Net score: %d pts\n", earned-deducted)
	return nil
}
