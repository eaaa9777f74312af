package system

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/lockfile"
	"github.com/jwinters/stint/internal/logger"
	"github.com/jwinters/stint/internal/tui"
)

type TimerCmd struct{}

// Run launches the live timer for the session in progress. The timer lock
// keeps a second process from driving the same session's tick loop.
func (c *TimerCmd) Run(ctx *cli.Context) error {
	session, err := ctx.CurrentSession("")
	if err != nil {
		return fmt.Errorf("%w; start one with 'stint start'", err)
	}

	lock, err := lockfile.Acquire(filepath.Dir(ctx.Store.GetConfigPath()))
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release timer lock", "error", err)
		}
	}()

	program := tea.NewProgram(tui.NewModel(ctx.Tracker, session))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("timer failed: %w", err)
	}

	fmt.Println("Timer closed. End the session with 'stint end' when you're finished.")
	return nil
}
