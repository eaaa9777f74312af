package sessions

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/models"
	"github.com/jwinters/stint/internal/utils"
)

type EndCmd struct {
	ID          string `help:"Session ID (default: the session in progress)."`
	Focus       int    `short:"f" help:"Focus level (1-5)." default:"3"`
	Confidence  int    `short:"c" help:"Confidence level (1-5, study sessions only)."`
	Notes       string `short:"n" help:"Session notes."`
	Progress    string `short:"p" help:"Progress notes (project sessions)."`
	Interactive bool   `short:"i" help:"Fill in quality ratings interactively."`
}

func (c *EndCmd) Run(ctx *cli.Context) error {
	session, err := ctx.CurrentSession(c.ID)
	if err != nil {
		return err
	}

	details := models.EndDetails{
		FocusLevel:      c.Focus,
		ConfidenceLevel: c.Confidence,
		Notes:           c.Notes,
		ProgressNotes:   c.Progress,
	}
	if session.Kind == constants.SessionKindStudy && details.ConfidenceLevel == 0 && !c.Interactive {
		details.ConfidenceLevel = 3
	}

	if c.Interactive {
		if err := promptEndDetails(session.Kind, &details); err != nil {
			return err
		}
	}

	if err := details.Validate(session.Kind); err != nil {
		return err
	}

	session, err = ctx.Tracker.End(session, details)
	if err != nil {
		return err
	}

	fmt.Printf("Ended %s: %s worked, %d points earned.\n",
		cli.ShortID(session.ID), utils.FormatElapsed(session.DurationMin), session.Points)
	return nil
}

func promptEndDetails(kind constants.SessionKind, details *models.EndDetails) error {
	levels := []huh.Option[int]{
		huh.NewOption("1 - poor", 1),
		huh.NewOption("2 - weak", 2),
		huh.NewOption("3 - okay", 3),
		huh.NewOption("4 - good", 4),
		huh.NewOption("5 - great", 5),
	}

	fields := []huh.Field{
		huh.NewSelect[int]().
			Title("How focused were you?").
			Options(levels...).
			Value(&details.FocusLevel),
	}

	if kind == constants.SessionKindStudy {
		fields = append(fields,
			huh.NewSelect[int]().
				Title("How confident are you in the material?").
				Options(levels...).
				Value(&details.ConfidenceLevel),
		)
	} else {
		fields = append(fields,
			huh.NewInput().
				Title("Progress made").
				Value(&details.ProgressNotes),
		)
	}

	fields = append(fields,
		huh.NewText().
			Title("Notes").
			Value(&details.Notes),
	)

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

type EditCmd struct {
	ID         string `arg:"" help:"Session ID."`
	Focus      string `short:"f" help:"New focus level (1-5)."`
	Confidence string `short:"c" help:"New confidence level (1-5)."`
	Notes      string `short:"n" help:"Replace session notes."`
}

// Run edits quality fields on an ended session and recomputes its score. The
// session stays closed; only the point value changes.
func (c *EditCmd) Run(ctx *cli.Context) error {
	session, err := ctx.ResolveSession(c.ID)
	if err != nil {
		return err
	}
	if !session.Ended() {
		return fmt.Errorf("session %s has not ended; use 'stint end' instead", cli.ShortID(session.ID))
	}

	if c.Focus != "" {
		level, err := parseLevel(c.Focus, "focus")
		if err != nil {
			return err
		}
		session.FocusLevel = level
	}
	if c.Confidence != "" {
		if session.Kind != constants.SessionKindStudy {
			return fmt.Errorf("confidence level only applies to study sessions")
		}
		level, err := parseLevel(c.Confidence, "confidence")
		if err != nil {
			return err
		}
		session.ConfidenceLevel = level
	}
	if c.Notes != "" {
		session.Notes = c.Notes
	}

	session, err = ctx.Tracker.Rescore(session)
	if err != nil {
		return err
	}

	fmt.Printf("Rescored %s: %d points.\n", cli.ShortID(session.ID), session.Points)
	return nil
}

func parseLevel(s, name string) (int, error) {
	level, err := strconv.Atoi(s)
	if err != nil || level < constants.MinQualityLevel || level > constants.MaxQualityLevel {
		return 0, fmt.Errorf("%s level must be between %d and %d", name,
			constants.MinQualityLevel, constants.MaxQualityLevel)
	}
	return level, nil
}
