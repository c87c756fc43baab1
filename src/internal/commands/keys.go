package commands

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/wgconf/src/internal/wgkey"
)

func CreateGenKeyCommand() *GenKeyCommand {
	return &GenKeyCommand{
		fs: flag.NewFlagSet("genkey", flag.ContinueOnError),
	}
}

// GenKeyCommand prints a new private key, like "wg genkey".
type GenKeyCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *GenKeyCommand) Name() string {
	return g.fs.Name()
}

func (g *GenKeyCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *GenKeyCommand) Run() error {
	key, err := wgkey.Generate()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.ctx.stdout(), key.String())
	return err
}

func CreatePubKeyCommand() *PubKeyCommand {
	gc := &PubKeyCommand{
		fs: flag.NewFlagSet("pubkey", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.Key, "key", "", "Private key (default: read one line from stdin)")

	return gc
}

// PubKeyCommand prints the public key of a private key, like "wg pubkey".
type PubKeyCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	Key string
}

func (g *PubKeyCommand) Name() string {
	return g.fs.Name()
}

func (g *PubKeyCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *PubKeyCommand) Run() error {
	text := g.Key
	if text == "" {
		line, err := bufio.NewReader(g.ctx.stdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read private key from stdin: %w", err)
		}
		text = line
	}

	key, err := wgkey.Parse(strings.TrimSpace(text))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(g.ctx.stdout(), key.PublicKey().String())
	return err
}
