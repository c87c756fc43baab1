package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/wgconf/src/internal/hooks"
	"github.com/maksimkurb/wgconf/src/internal/utils"
)

func CreateHooksCommand() *HooksCommand {
	gc := &HooksCommand{
		fs: flag.NewFlagSet("hooks", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.File, "file", "", "WireGuard configuration file")
	gc.fs.StringVar(&gc.Iface, "iface", "", "Interface name substituted for %i (default: file name without .conf)")

	return gc
}

// HooksCommand prints PostUp/PostDown the way wg-quick would run them.
type HooksCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	File  string
	Iface string
}

func (g *HooksCommand) Name() string {
	return g.fs.Name()
}

func (g *HooksCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.File == "" {
		return fmt.Errorf("-file is required")
	}
	if g.Iface == "" {
		g.Iface = utils.InterfaceNameFromPath(g.File)
	}
	return nil
}

func (g *HooksCommand) Run() error {
	_, iface, err := readInterfaceFile(g.File)
	if err != nil {
		return err
	}

	out := g.ctx.stdout()
	if _, err := fmt.Fprintf(out, "PostUp: %s\n", hooks.ExpandInterfaceName(iface.PostUp(), g.Iface)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "PostDown: %s\n", hooks.ExpandInterfaceName(iface.PostDown(), g.Iface))
	return err
}
