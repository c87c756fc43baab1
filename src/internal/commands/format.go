package commands

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/maksimkurb/wgconf/src/internal/hashing"
	"github.com/maksimkurb/wgconf/src/internal/log"
	"github.com/maksimkurb/wgconf/src/internal/utils"
)

func CreateFormatCommand() *FormatCommand {
	gc := &FormatCommand{
		fs: flag.NewFlagSet("format", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.File, "file", "", "WireGuard configuration file to format")
	gc.fs.BoolVar(&gc.Write, "w", false, "Write the result back to the file instead of stdout")

	return gc
}

// FormatCommand rewrites a configuration file with a canonical [Interface]
// section. Unmodelled interface lines and other sections are kept as read.
type FormatCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	File  string
	Write bool
}

func (g *FormatCommand) Name() string {
	return g.fs.Name()
}

func (g *FormatCommand) Init(args []string, ctx *AppContext) error {
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

func (g *FormatCommand) Run() error {
	file, _, err := readInterfaceFile(g.File)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := file.Format(&buf); err != nil {
		return fmt.Errorf("failed to format %s: %w", g.File, err)
	}

	if !g.Write {
		_, err := g.ctx.stdout().Write(buf.Bytes())
		return err
	}

	if hashing.SumString(buf.String()) == file.Checksum {
		log.Infof("%s is already formatted", g.File)
		return nil
	}

	if err := utils.WriteFileAtomic(g.File, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.File, err)
	}
	log.Infof("Formatted %s", g.File)
	return nil
}
