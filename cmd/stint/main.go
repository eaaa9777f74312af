package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jwinters/stint/internal/cli"
	"github.com/jwinters/stint/internal/cli/backups"
	"github.com/jwinters/stint/internal/cli/goals"
	"github.com/jwinters/stint/internal/cli/sessions"
	"github.com/jwinters/stint/internal/cli/system"
	"github.com/jwinters/stint/internal/clock"
	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/errors"
	"github.com/jwinters/stint/internal/logger"
	"github.com/jwinters/stint/internal/reconciler"
	"github.com/jwinters/stint/internal/storage"
	"github.com/jwinters/stint/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json extension selects the JSON backend; anything else uses SQLite." default:"~/.config/stint/stint.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      system.InitCmd      `cmd:"" help:"Initialize stint storage."`
	Start     sessions.StartCmd   `cmd:"" help:"Start a new work session."`
	Pause     sessions.PauseCmd   `cmd:"" help:"Pause the running session."`
	Resume    sessions.ResumeCmd  `cmd:"" help:"Resume a paused session."`
	End       sessions.EndCmd     `cmd:"" help:"End the session and score it."`
	Edit      sessions.EditCmd    `cmd:"" help:"Edit quality ratings on an ended session and rescore it."`
	Status    sessions.StatusCmd  `cmd:"" help:"Show the session in progress."`
	Log       sessions.LogCmd     `cmd:"" help:"List sessions for a day."`
	Timer     system.TimerCmd     `cmd:"" help:"Run the live session timer."`
	Goal      goals.GoalCmd       `cmd:"" help:"Manage daily goals."`
	Reconcile goals.ReconcileCmd  `cmd:"" help:"Recompute delay state for all goals."`
	Stats     cli.StatsCmd        `cmd:"" help:"Show the day's score."`
	Doctor    system.DoctorCmd    `cmd:"" help:"Run health checks on stored records."`
	Backup    struct {
		Create backups.BackupCreateCmd `cmd:"" help:"Create a manual backup." default:"1"`
		List   backups.BackupListCmd   `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Study and project session tracker with daily goals and a point score"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	clk := clock.System()
	appCtx := &cli.Context{
		Store:      store,
		Tracker:    tracker.New(store, clk),
		Reconciler: reconciler.New(store, clk),
		Clock:      clk,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
