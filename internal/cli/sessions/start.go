package sessions

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/models"
)

type StartCmd struct {
	Subject string `arg:"" help:"What you are working on."`
	Kind    string `short:"k" help:"Session kind (study|project)." default:"study" enum:"study,project"`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	if _, ok, err := ctx.ActiveSession(); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("a session is already active; pause or end it first")
	}

	session := models.Session{
		ID:        uuid.New().String(),
		Kind:      constants.SessionKind(c.Kind),
		Subject:   c.Subject,
		Date:      ctx.Today(),
		CreatedAt: ctx.Clock.Now(),
	}

	session, err := ctx.Tracker.Start(session)
	if err != nil {
		return err
	}

	fmt.Printf("Started %s session %s: %s\n", session.Kind, cli.ShortID(session.ID), session.Subject)
	return nil
}
