package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_NonExistentFileUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "missing.toml")

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}

	if config.General.InterfaceName != "wg0" {
		t.Errorf("Expected default interface name wg0, got %s", config.General.InterfaceName)
	}
	if config.API.ListenPort != 8080 {
		t.Errorf("Expected default API port 8080, got %d", config.API.ListenPort)
	}
	if config.GetConfigPath() != configFile {
		t.Errorf("Expected config path %s, got %s", configFile, config.GetConfigPath())
	}
	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Default settings must be valid: %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.toml")

	invalidTOML := `[general
	interface_name = "wg0"`

	if err := os.WriteFile(configFile, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadConfig(configFile)
	if err == nil {
		t.Fatal("Expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "failed to parse settings file") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "valid.toml")

	validTOML := `[general]
interface_name = "wg-office"

[api]
listen_addr = "[::1]"
listen_port = 9090

[template]
address = "192.168.77.1/24"
post_up = "ip route add {{network}} dev {{interface}}"`

	if err := os.WriteFile(configFile, []byte(validTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if config.General.InterfaceName != "wg-office" {
		t.Errorf("Expected interface_name 'wg-office', got %s", config.General.InterfaceName)
	}
	if config.API.ListenAddr != "[::1]" || config.API.ListenPort != 9090 {
		t.Errorf("Unexpected api section: %+v", config.API)
	}
	if config.API.MaxBodyBytes != 64*1024 {
		t.Errorf("Expected max_body_bytes to be filled with default, got %d", config.API.MaxBodyBytes)
	}
	if config.Template.ListenPort != 51820 {
		t.Errorf("Expected template listen_port default 51820, got %d", config.Template.ListenPort)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected config to be valid: %v", err)
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configFile, []byte("[general]\ninterface_name = \"wg1\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() { _ = os.Chdir(oldDir) }()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	config, err := LoadConfig("config.toml")
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if !filepath.IsAbs(config.GetConfigPath()) {
		t.Errorf("Expected absolute config path, got %s", config.GetConfigPath())
	}
	if config.GetAbsOutputDir() != config.GetConfigDir() {
		t.Errorf("Expected output dir '.' to resolve to %s, got %s", config.GetConfigDir(), config.GetAbsOutputDir())
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nested", "wgconf.toml")

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	config.General.InterfaceName = "wg7"
	config.Template.Address = "10.7.0.1/16"

	if err := config.WriteConfig(); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("LoadConfig after write failed: %v", err)
	}
	if loaded.General.InterfaceName != "wg7" || loaded.Template.Address != "10.7.0.1/16" {
		t.Errorf("Settings did not survive round trip: %+v %+v", loaded.General, loaded.Template)
	}
	if loaded.FillDefaults() {
		t.Error("Written settings must already contain every default")
	}
}

func TestFillDefaults_KeepsExplicitValues(t *testing.T) {
	c := &Config{
		General: &GeneralConfig{InterfaceName: "tun0"},
		API:     &APIConfig{ListenPort: 1234, MaxBodyBytes: 10},
	}

	if !c.FillDefaults() {
		t.Fatal("Expected FillDefaults to report a change for missing template section")
	}
	if c.General.InterfaceName != "tun0" || c.API.ListenPort != 1234 || c.API.MaxBodyBytes != 10 {
		t.Errorf("Explicit values were overwritten: %+v %+v", c.General, c.API)
	}
	if c.Template == nil {
		t.Fatal("Expected template section to be created")
	}
}
