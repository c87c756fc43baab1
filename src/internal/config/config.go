package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	wgerrors "github.com/maksimkurb/wgconf/src/internal/errors"
	"github.com/maksimkurb/wgconf/src/internal/log"
)

// LoadConfig reads the settings file at configPath. A missing file is not an
// error: defaults are returned and WriteConfig creates the file.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, wgerrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("Settings file not found, using defaults: %s", configFile)
		config := DefaultConfig()
		config._absConfigFilePath = configFile
		return config, nil
	}
	if err != nil {
		return nil, wgerrors.NewConfigError("failed to read settings file", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			return nil, wgerrors.NewConfigError(fmt.Sprintf("failed to parse settings file at line %d, column %d", row, col), err)
		}
		return nil, wgerrors.NewConfigError("failed to parse settings file", err)
	}

	if config.FillDefaults() {
		log.Debugf("Missing settings were filled with defaults")
	}
	config._absConfigFilePath = configFile

	log.Debugf("Settings file path: %s", configFile)

	return &config, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (c *Config) WriteConfig() error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.GetConfigDir(), 0755); err != nil {
		return wgerrors.NewConfigError("failed to create settings directory", err)
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return wgerrors.NewConfigError("failed to write settings file", err)
	}
	return nil
}
