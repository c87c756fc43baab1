// Package config handles the wgconf settings file.
//
// Settings are stored as TOML and validated with go-playground/validator.
// They are not part of any WireGuard configuration: they hold tool defaults
// such as the interface name substituted into hook commands, the HTTP API
// listener, and the template used to generate new interface sections.
//
//	[general]
//	interface_name = "wg0"
//
//	[api]
//	listen_addr = "127.0.0.1"
//	listen_port = 8080
//
//	[template]
//	address = "10.0.0.1/24"
//	listen_port = 51820
//	post_up = "iptables -A FORWARD -i {{interface}} -j ACCEPT"
//
// Loading a missing file yields defaults. ValidateConfig returns every
// problem at once as ValidationErrors.
package config
