package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/wgconf/src/internal/log"
	"github.com/maksimkurb/wgconf/src/internal/wgconf"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.File, "file", "", "WireGuard configuration file to check")
	gc.fs.BoolVar(&gc.Strict, "strict", false, "Fail on [Interface] fields wgconf does not know")

	return gc
}

// CheckCommand validates the [Interface] section of a configuration file.
type CheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	File   string
	Strict bool
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.File == "" && g.fs.NArg() > 0 {
		g.File = g.fs.Arg(0)
	}
	if g.File == "" {
		return fmt.Errorf("-file is required")
	}
	return nil
}

func (g *CheckCommand) Run() error {
	file, iface, err := readInterfaceFile(g.File)
	if err != nil {
		return err
	}

	section, err := file.InterfaceSection()
	if err != nil {
		return err
	}
	if unknown := wgconf.UnknownFields(section.Fields); len(unknown) > 0 {
		if g.Strict {
			return fmt.Errorf("%s: unsupported [Interface] fields: %s", g.File, strings.Join(unknown, ", "))
		}
		log.Warnf("%s: ignoring unsupported [Interface] fields: %s", g.File, strings.Join(unknown, ", "))
	}

	log.Debugf("%s: %d section(s), md5 %s", g.File, len(file.Sections), file.Checksum)

	_, err = fmt.Fprintf(g.ctx.stdout(), "%s: OK (address %s, listen port %d, %d other section(s))\n",
		g.File, iface.Address(), iface.ListenPort(), len(file.Others()))
	return err
}
