package config

import (
	"path/filepath"

	"github.com/maksimkurb/wgconf/src/internal/utils"
)

type Config struct {
	// General holds general settings.
	General *GeneralConfig `toml:"general"`
	// API holds settings of the HTTP codec service started by "serve".
	API *APIConfig `toml:"api"`
	// Template holds the defaults used by "new" to generate an interface section.
	Template *TemplateConfig `toml:"template"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// Verbose enables debug logging (same as -verbose).
	Verbose bool `toml:"verbose" json:"verbose"`
	// InterfaceName is substituted for %i and {{interface}} in hook commands (default: wg0).
	InterfaceName string `toml:"interface_name" json:"interface_name" validate:"required,iface_name"`
}

type APIConfig struct {
	// ListenAddr is the API listen address (IPv4, IPv6 in square brackets, or empty for all addresses).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"ip_or_empty"`
	// ListenPort is the API listen port (default: 8080).
	ListenPort uint16 `toml:"listen_port" json:"listen_port" validate:"required,min=1"`
	// MaxBodyBytes limits the size of request bodies (default: 65536).
	MaxBodyBytes int64 `toml:"max_body_bytes" json:"max_body_bytes" validate:"required,min=1,max=1048576"`
	// PrivateOnly rejects requests from outside private subnets (default: true).
	PrivateOnly bool `toml:"private_only" json:"private_only"`
}

type TemplateConfig struct {
	// Address is the interface address with mask for new configurations.
	Address string `toml:"address" json:"address" validate:"required,cidr"`
	// ListenPort is the listen port for new configurations (default: 51820).
	ListenPort uint16 `toml:"listen_port" json:"listen_port" validate:"required,min=1"`
	// PostUp is a hook command template. Available variables: {{interface}}, {{address}}, {{network}}, {{listen_port}}.
	PostUp string `toml:"post_up" json:"post_up" validate:"hook_template"`
	// PostDown is a hook command template with the same variables as PostUp.
	PostDown string `toml:"post_down" json:"post_down" validate:"hook_template"`
	// OutputDir is where "new -w" writes <interface_name>.conf, relative to the settings file.
	OutputDir string `toml:"output_dir" json:"output_dir"`
}

// DefaultConfig returns the settings used when no settings file exists.
func DefaultConfig() *Config {
	c := &Config{}
	c.FillDefaults()
	return c
}

// FillDefaults sets every missing section and zero-valued field to its
// default and reports whether anything changed.
func (c *Config) FillDefaults() bool {
	changed := false

	if c.General == nil {
		c.General = &GeneralConfig{}
		changed = true
	}
	if c.General.InterfaceName == "" {
		c.General.InterfaceName = "wg0"
		changed = true
	}

	if c.API == nil {
		c.API = &APIConfig{ListenAddr: "127.0.0.1", PrivateOnly: true}
		changed = true
	}
	if c.API.ListenPort == 0 {
		c.API.ListenPort = 8080
		changed = true
	}
	if c.API.MaxBodyBytes == 0 {
		c.API.MaxBodyBytes = 64 * 1024
		changed = true
	}

	if c.Template == nil {
		c.Template = &TemplateConfig{
			Address:   "10.0.0.1/24",
			PostUp:    "iptables -A FORWARD -i {{interface}} -j ACCEPT",
			PostDown:  "iptables -D FORWARD -i {{interface}} -j ACCEPT",
			OutputDir: ".",
		}
		changed = true
	}
	if c.Template.ListenPort == 0 {
		c.Template.ListenPort = 51820
		changed = true
	}

	return changed
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetConfigPath returns the absolute path of the settings file.
func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}

// GetAbsOutputDir resolves Template.OutputDir against the settings file directory.
func (c *Config) GetAbsOutputDir() string {
	return utils.GetAbsolutePath(c.Template.OutputDir, c.GetConfigDir())
}
