package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/maksimkurb/wgconf/src/internal/config"
	"github.com/maksimkurb/wgconf/src/internal/log"
	"github.com/maksimkurb/wgconf/src/internal/wgconf"
	"github.com/maksimkurb/wgconf/src/internal/wgfile"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Version    string
	Commit     string
	Date       string

	// Stdout and Stdin default to the process streams when nil.
	Stdout io.Writer
	Stdin  io.Reader
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout != nil {
		return ctx.Stdout
	}
	return os.Stdout
}

func (ctx *AppContext) stdin() io.Reader {
	if ctx.Stdin != nil {
		return ctx.Stdin
	}
	return os.Stdin
}

// loadAndValidateConfigOrFail loads the settings file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	if cfg.General.Verbose {
		log.SetVerbose(true)
	}

	return cfg, nil
}

// readInterfaceFile reads a configuration file and builds its [Interface] section.
func readInterfaceFile(path string) (*wgfile.File, wgconf.Interface, error) {
	if path == "" {
		return nil, wgconf.Interface{}, fmt.Errorf("-file is required")
	}

	file, err := wgfile.ReadFile(path)
	if err != nil {
		return nil, wgconf.Interface{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	iface, err := file.Interface()
	if err != nil {
		return nil, wgconf.Interface{}, fmt.Errorf("%s: %w", path, err)
	}

	return file, iface, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
