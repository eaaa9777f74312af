package goals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/models"
	"github.com/jwinters/stint/internal/utils"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a daily goal."`
	List   GoalListCmd   `cmd:"" help:"List goals visible for a day."`
	Done   GoalDoneCmd   `cmd:"" help:"Mark a goal as achieved."`
	Miss   GoalMissCmd   `cmd:"" help:"Record why a goal was not achieved."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal."`
}

type GoalAddCmd struct {
	Description string `arg:"" help:"What you intend to do."`
	Date        string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
	Remind      string `short:"r" help:"Reminder offset (one_day_before|one_week_before|one_month_before|custom_date)."`
	RemindDate  string `help:"Reminder date for custom_date reminders (YYYY-MM-DD)."`
}

func (c *GoalAddCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
	}
	if c.Remind == string(constants.ReminderCustomDate) && c.RemindDate == "" {
		return fmt.Errorf("custom_date reminders need --remind-date")
	}
	if c.Remind != string(constants.ReminderCustomDate) && c.RemindDate != "" {
		return fmt.Errorf("--remind-date only applies to custom_date reminders")
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	goal := models.Goal{
		ID:          uuid.New().String(),
		Date:        date,
		Description: c.Description,
		CreatedAt:   ctx.Clock.Now(),
	}

	if c.Remind != "" {
		goal.Reminder = &models.Reminder{
			Type: constants.ReminderType(c.Remind),
			Date: c.RemindDate,
		}
	}

	if err := goal.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Added goal %s for %s: %s\n", cli.ShortID(goal.ID), goal.Date, goal.Description)
	return nil
}

type GoalListCmd struct {
	Date string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
	All  bool   `short:"a" help:"List every goal instead of one day's view."`
	Open bool   `short:"o" help:"Only goals dated that day which are still unachieved."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	var goals []models.Goal
	var err error

	date := c.Date
	if date == "" {
		date = ctx.Today()
	} else if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}

	switch {
	case c.All:
		goals, err = ctx.Store.GetAllGoals()
	case c.Open:
		goals, err = ctx.Store.GetUnachievedGoalsByDate(date)
	default:
		goals, err = ctx.Reconciler.VisibleGoals(date)
	}
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}

	for _, goal := range goals {
		fmt.Println(formatGoal(goal))
	}
	return nil
}

func formatGoal(g models.Goal) string {
	status := "[ ]"
	if g.Achieved {
		status = "[x]"
	}

	line := fmt.Sprintf("%s %-8s %s  %s", status, cli.ShortID(g.ID), g.Date, g.Description)
	if g.Delayed {
		line += fmt.Sprintf("  (delayed %dd, -%d pts)", g.DaysDelayed, g.PointsDeducted)
	}
	if g.Reminder != nil {
		line += fmt.Sprintf("  remind: %s", g.Reminder.FormatReminder())
	}
	if !g.Achieved && g.Reason != "" {
		line += fmt.Sprintf("  reason: %s", g.Reason)
	}
	return line
}

type GoalDoneCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalDoneCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.ID)
	if err != nil {
		return err
	}

	if goal.Achieved {
		fmt.Println("Goal is already achieved.")
		return nil
	}

	goal.MarkAchieved()
	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Achieved: %s\n", goal.Description)
	return nil
}

type GoalMissCmd struct {
	ID     string `arg:"" help:"Goal ID."`
	Reason string `arg:"" help:"Why the goal was not achieved."`
}

func (c *GoalMissCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.ID)
	if err != nil {
		return err
	}
	if goal.Achieved {
		return fmt.Errorf("goal %s is already achieved", cli.ShortID(goal.ID))
	}

	goal.Reason = c.Reason
	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Recorded reason for %s.\n", cli.ShortID(goal.ID))
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteGoal(goal.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted goal: %s\n", goal.Description)
	return nil
}

type ReconcileCmd struct{}

// Run recomputes delay state for every goal. Safe to run repeatedly; a second
// pass on the same day writes nothing.
func (c *ReconcileCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	result, err := ctx.Reconciler.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Reconciled %d goals: %d updated, %d failed.\n",
		result.Checked, result.Updated, result.Failed)
	return nil
}
