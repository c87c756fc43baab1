package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/maksimkurb/wgconf/src/internal/api"
	"github.com/maksimkurb/wgconf/src/internal/config"
	"github.com/maksimkurb/wgconf/src/internal/log"
)

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.ListenAddr, "listen-addr", "", "Override api.listen_addr")
	gc.fs.UintVar(&gc.ListenPort, "listen-port", 0, "Override api.listen_port")
	gc.fs.IntVar(&gc.MaxRestarts, "max-restarts", 5, "Give up after this many consecutive server failures (0 = never)")

	return gc
}

// ServeCommand runs the HTTP codec API until interrupted.
type ServeCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	ListenAddr  string
	ListenPort  uint
	MaxRestarts int
}

func (g *ServeCommand) Name() string {
	return g.fs.Name()
}

func (g *ServeCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if g.ListenAddr != "" {
		cfg.API.ListenAddr = g.ListenAddr
	}
	if g.ListenPort != 0 {
		cfg.API.ListenPort = uint16(g.ListenPort)
	}
	// Overrides go through the same checks as the settings file.
	if err := cfg.ValidateConfig(); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

func (g *ServeCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return g.serve(ctx)
}

func (g *ServeCommand) serve(ctx context.Context) error {
	version := api.VersionInfo{Version: g.ctx.Version, Commit: g.ctx.Commit, Date: g.ctx.Date}

	if g.cfg.API.PrivateOnly {
		log.Infof("Access restricted to private subnets only:")
		log.Infof("  IPv4: 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16, 127.0.0.0/8")
		log.Infof("  IPv6: fc00::/7, fe80::/10, ::1/128")
	}

	runner := NewRestartableRunner(RunnerConfig{
		Name:        "api-server",
		MaxRestarts: g.MaxRestarts,
	}, func(ctx context.Context) error {
		return api.NewServer(g.cfg, version).Run(ctx)
	})

	if err := runner.Run(ctx); err != nil {
		return err
	}
	log.Infof("Server stopped")
	return nil
}
