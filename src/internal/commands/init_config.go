package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/wgconf/src/internal/config"
	"github.com/maksimkurb/wgconf/src/internal/log"
)

func CreateInitConfigCommand() *InitConfigCommand {
	gc := &InitConfigCommand{
		fs: flag.NewFlagSet("init-config", flag.ContinueOnError),
	}

	gc.fs.BoolVar(&gc.Force, "force", false, "Rewrite an existing settings file, filling missing values with defaults")

	return gc
}

// InitConfigCommand writes the settings file with default values.
type InitConfigCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Force bool
}

func (g *InitConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *InitConfigCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(ctx.ConfigPath); err == nil && !g.Force {
		return fmt.Errorf("settings file %s already exists (use -force to rewrite it)", ctx.ConfigPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", ctx.ConfigPath, err)
	}

	cfg, err := config.LoadConfig(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

func (g *InitConfigCommand) Run() error {
	if err := g.cfg.ValidateConfig(); err != nil {
		return fmt.Errorf("refusing to write invalid settings: %w", err)
	}
	if err := g.cfg.WriteConfig(); err != nil {
		return err
	}
	log.Infof("Settings written to %s", g.cfg.GetConfigPath())
	return nil
}
