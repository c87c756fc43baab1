package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/maksimkurb/wgconf/src/internal/wgconf"
)

const (
	formatTOML = "toml"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatTOML, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unsupported format %q (supported: %s, %s, %s)", format, formatTOML, formatJSON, formatYAML)
}

func CreateExportCommand() *ExportCommand {
	gc := &ExportCommand{
		fs: flag.NewFlagSet("export", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.File, "file", "", "WireGuard configuration file to export")
	gc.fs.StringVar(&gc.Format, "format", formatTOML, "Output format: toml, json or yaml")

	return gc
}

// ExportCommand prints the [Interface] section as a TOML, JSON or YAML document.
type ExportCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	File   string
	Format string
}

func (g *ExportCommand) Name() string {
	return g.fs.Name()
}

func (g *ExportCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.File == "" {
		return fmt.Errorf("-file is required")
	}
	return validateFormat(g.Format)
}

func (g *ExportCommand) Run() error {
	_, iface, err := readInterfaceFile(g.File)
	if err != nil {
		return err
	}

	var out []byte
	switch g.Format {
	case formatTOML:
		out, err = wgconf.MarshalTOML(iface)
	case formatJSON:
		out, err = json.MarshalIndent(wgconf.NewDocument(iface), "", "  ")
		out = append(out, '\n')
	case formatYAML:
		out, err = wgconf.MarshalYAML(iface)
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", g.File, err)
	}

	_, err = g.ctx.stdout().Write(out)
	return err
}

func CreateImportCommand() *ImportCommand {
	gc := &ImportCommand{
		fs: flag.NewFlagSet("import", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.File, "file", "-", "Document to import (- for stdin)")
	gc.fs.StringVar(&gc.Format, "format", formatTOML, "Input format: toml, json or yaml")

	return gc
}

// ImportCommand reads a TOML, JSON or YAML document produced by export and prints
// the canonical [Interface] section.
type ImportCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	File   string
	Format string
}

func (g *ImportCommand) Name() string {
	return g.fs.Name()
}

func (g *ImportCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	if err := g.fs.Parse(args); err != nil {
		return err
	}
	return validateFormat(g.Format)
}

func (g *ImportCommand) Run() error {
	data, err := readInput(g.File, g.ctx.stdin())
	if err != nil {
		return err
	}

	var iface wgconf.Interface
	switch g.Format {
	case formatTOML:
		iface, err = wgconf.UnmarshalTOML(data)
	case formatJSON:
		var doc wgconf.Document
		if err = json.Unmarshal(data, &doc); err == nil {
			iface, err = doc.Build()
		}
	case formatYAML:
		iface, err = wgconf.UnmarshalYAML(data)
	}
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	_, err = iface.WriteTo(g.ctx.stdout())
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(stdin)
	}
	return readFile(path)
}
