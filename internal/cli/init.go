package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/mindcare/internal/companion"
	"github.com/julianstephens/mindcare/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing rules file."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := os.MkdirAll(filepath.Join(ctx.ConfigDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(ctx.ConfigDir, constants.RulesFileName)
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("rules file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, companion.DefaultRulesYAML(), 0o644); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	fmt.Fprintf(ctx.out(), "Initialized %s config at: %s\n", constants.AppName, ctx.ConfigDir)
	fmt.Fprintf(ctx.out(), "Edit %s to customize the companion's replies.\n", path)
	return nil
}
