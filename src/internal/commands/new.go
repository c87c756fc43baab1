package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"

	"github.com/maksimkurb/wgconf/src/internal/config"
	"github.com/maksimkurb/wgconf/src/internal/hooks"
	"github.com/maksimkurb/wgconf/src/internal/log"
	"github.com/maksimkurb/wgconf/src/internal/utils"
	"github.com/maksimkurb/wgconf/src/internal/wgconf"
	"github.com/maksimkurb/wgconf/src/internal/wgkey"
)

func CreateNewCommand() *NewCommand {
	gc := &NewCommand{
		fs: flag.NewFlagSet("new", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.Iface, "iface", "", "Interface name (default: general.interface_name)")
	gc.fs.StringVar(&gc.Address, "address", "", "Interface address with mask (default: template.address)")
	gc.fs.UintVar(&gc.ListenPort, "port", 0, "Listen port (default: template.listen_port)")
	gc.fs.BoolVar(&gc.Write, "w", false, "Write <output_dir>/<iface>.conf instead of printing")
	gc.fs.BoolVar(&gc.Force, "force", false, "Overwrite an existing file with -w")

	return gc
}

// NewCommand generates an [Interface] section with a fresh private key from
// the [template] settings.
type NewCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	Iface      string
	Address    string
	ListenPort uint
	Write      bool
	Force      bool
}

func (g *NewCommand) Name() string {
	return g.fs.Name()
}

func (g *NewCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.ListenPort > 65535 {
		return fmt.Errorf("-port must be <= 65535")
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	if g.Iface == "" {
		g.Iface = cfg.General.InterfaceName
	}
	if g.Address == "" {
		g.Address = cfg.Template.Address
	}
	if g.ListenPort == 0 {
		g.ListenPort = uint(cfg.Template.ListenPort)
	}
	return nil
}

// Generate builds the new interface section.
func (g *NewCommand) Generate() (wgconf.Interface, error) {
	address, err := netip.ParsePrefix(g.Address)
	if err != nil {
		return wgconf.Interface{}, fmt.Errorf("invalid address %q: %w", g.Address, err)
	}
	port := uint16(g.ListenPort)

	vars := hooks.Vars{
		Interface:  g.Iface,
		Address:    address,
		ListenPort: port,
	}
	postUp, err := hooks.Expand(g.cfg.Template.PostUp, vars)
	if err != nil {
		return wgconf.Interface{}, fmt.Errorf("template.post_up: %w", err)
	}
	postDown, err := hooks.Expand(g.cfg.Template.PostDown, vars)
	if err != nil {
		return wgconf.Interface{}, fmt.Errorf("template.post_down: %w", err)
	}

	key, err := wgkey.Generate()
	if err != nil {
		return wgconf.Interface{}, err
	}

	iface, err := wgconf.New(key, address, port, postUp, postDown)
	if err != nil {
		return wgconf.Interface{}, err
	}
	// template hooks may be TOML multi-line strings
	if err := wgconf.CheckLines(iface); err != nil {
		return wgconf.Interface{}, err
	}
	return iface, nil
}

func (g *NewCommand) Run() error {
	iface, err := g.Generate()
	if err != nil {
		return err
	}

	if !g.Write {
		_, err := iface.WriteTo(g.ctx.stdout())
		return err
	}

	dir := g.cfg.GetAbsOutputDir()
	path := filepath.Join(dir, g.Iface+".conf")
	if _, err := os.Stat(path); err == nil && !g.Force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if _, err := iface.WriteTo(&buf); err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Infof("Created %s (public key %s)", path, iface.PrivateKey().PublicKey())
	return nil
}
