package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/wgconf/src/internal/commands"
	"github.com/maksimkurb/wgconf/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	flag.StringVar(&ctx.ConfigPath, "config", "/etc/wgconf/wgconf.toml", "Path to settings file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "WireGuard [Interface] configuration codec\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  check                   Validate the [Interface] section of a configuration file\n")
		fmt.Fprintf(os.Stderr, "  format                  Print or rewrite (-w) a file with a canonical [Interface] section\n")
		fmt.Fprintf(os.Stderr, "  export                  Print the [Interface] section as TOML or JSON\n")
		fmt.Fprintf(os.Stderr, "  import                  Convert a TOML or JSON document back to configuration text\n")
		fmt.Fprintf(os.Stderr, "  hooks                   Show PostUp/PostDown with %%i expanded\n")
		fmt.Fprintf(os.Stderr, "  genkey                  Generate a private key\n")
		fmt.Fprintf(os.Stderr, "  pubkey                  Derive the public key of a private key\n")
		fmt.Fprintf(os.Stderr, "  new                     Generate an [Interface] section from settings\n")
		fmt.Fprintf(os.Stderr, "  init-config             Write the settings file with defaults\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the HTTP API\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// stdout carries rendered configuration and keys
	log.SetForceStdErr(true)

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateCheckCommand(),
		commands.CreateFormatCommand(),
		commands.CreateExportCommand(),
		commands.CreateImportCommand(),
		commands.CreateHooksCommand(),
		commands.CreateGenKeyCommand(),
		commands.CreatePubKeyCommand(),
		commands.CreateNewCommand(),
		commands.CreateInitConfigCommand(),
		commands.CreateServeCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
