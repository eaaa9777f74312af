package system

import (
	"fmt"
	"os"

	"github.com/jwinters/stint/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		if !c.Force {
			return err
		}
		if err := os.Remove(ctx.Store.GetConfigPath()); err != nil {
			return fmt.Errorf("failed to remove existing storage: %w", err)
		}
		if err := ctx.Store.Init(); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized stint storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
