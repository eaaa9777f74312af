package sessions

import (
	"errors"
	"fmt"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/tracker"
	"github.com/jwinters/stint/internal/utils"
)

type PauseCmd struct {
	ID string `help:"Session ID (default: the active session)."`
}

func (c *PauseCmd) Run(ctx *cli.Context) error {
	session, err := ctx.CurrentSession(c.ID)
	if err != nil {
		return err
	}

	session, err = ctx.Tracker.Pause(session)
	if errors.Is(err, tracker.ErrNotActive) {
		fmt.Println("Session is not active; nothing to pause.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Paused %s at %s elapsed.\n", cli.ShortID(session.ID), utils.FormatElapsed(session.ElapsedMin))
	return nil
}

type ResumeCmd struct {
	ID string `help:"Session ID (default: the most recently paused session)."`
}

func (c *ResumeCmd) Run(ctx *cli.Context) error {
	session, err := ctx.CurrentSession(c.ID)
	if err != nil {
		return err
	}

	session, err = ctx.Tracker.Resume(session)
	if errors.Is(err, tracker.ErrAlreadyActive) {
		fmt.Println("Session is already active; nothing to resume.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Resumed %s from %s elapsed.\n", cli.ShortID(session.ID), utils.FormatElapsed(session.ElapsedMin))
	return nil
}
