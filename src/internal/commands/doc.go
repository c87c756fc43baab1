// Package commands implements the wgconf subcommands.
//
// Each command implements Runner: Init parses its flags and loads what it
// needs, Run does the work and writes results to AppContext.Stdout.
//
//   - check: validate the [Interface] section of a configuration file
//   - format: print or rewrite a file with a canonical [Interface] section
//   - export / import: convert between configuration text and TOML/JSON documents
//   - hooks: show PostUp/PostDown with %i expanded
//   - genkey / pubkey: key generation and public key derivation
//   - new: generate an interface section from the [template] settings
//   - init-config: write the settings file with defaults
//   - serve: run the HTTP API
//
// Example:
//
//	cmd := commands.CreateCheckCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/wgconf/wgconf.toml"}
//	if err := cmd.Init([]string{"-file", "/etc/wireguard/wg0.conf"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
