// Package utils provides small helpers shared by the wgconf commands.
//
//   - Path utilities: resolve paths relative to the settings file and derive
//     interface names from configuration file names.
//   - File utilities: closing with a logged warning and atomic replacement of
//     configuration files.
package utils
