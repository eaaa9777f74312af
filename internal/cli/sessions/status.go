package sessions

import (
	"fmt"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	session, ok, err := ctx.ActiveSession()
	if err != nil {
		return err
	}
	if !ok {
		if paused, found, err := ctx.PausedSession(); err != nil {
			return err
		} else if found {
			fmt.Printf("Paused %s session %s: %s (%s elapsed)\n",
				paused.Kind, cli.ShortID(paused.ID), paused.Subject, utils.FormatElapsed(paused.ElapsedMin))
			return nil
		}
		fmt.Println("No session in progress.")
		return nil
	}

	session = ctx.Tracker.Tick(session)
	fmt.Printf("Active %s session %s: %s (%s elapsed)\n",
		session.Kind, cli.ShortID(session.ID), session.Subject, utils.FormatElapsed(session.DurationMin))
	return nil
}

type LogCmd struct {
	Date string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
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

	if len(sessions) == 0 {
		fmt.Printf("No sessions on %s.\n", date)
		return nil
	}

	for _, session := range sessions {
		fmt.Println(cli.FormatSession(session))
	}
	return nil
}
