// Package log provides simple leveled logging for wgconf.
//
// Four levels are supported: DEBUG (verbose mode only), INFO, WARN and ERROR.
// Messages carry a coloured prefix; ERROR goes to stderr, everything else to
// stdout unless SetForceStdErr is enabled. Commands that print configuration
// text on stdout switch logs to stderr so the output stays pipeable.
//
//	log.SetVerbose(true)
//	log.Debugf("section %s at line %d", name, line)
//	log.Fatalf("Failed to load settings: %v", err) // exits with code 1
//
// All functions are safe for concurrent use.
package log
