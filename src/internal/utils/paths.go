package utils

import (
	"path/filepath"
	"strings"
)

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir.
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

// InterfaceNameFromPath derives the interface name wg-quick would use for a
// configuration file: the base name without the .conf extension.
func InterfaceNameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".conf")
}
