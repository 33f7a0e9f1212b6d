package logging

import (
	"fmt"
	"os"
)

var verbose bool

// SetVerbose enables or disables debug output programmatically, on top of
// the TR_DEBUG environment variable
func SetVerbose(enabled bool) {
	verbose = enabled
}

// DebugEnabled returns true if debug mode is enabled, either via SetVerbose
// or the TR_DEBUG environment variable
func DebugEnabled() bool {
	return verbose || os.Getenv("TR_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Println(args...)
	}
}
