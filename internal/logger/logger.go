// Package logger provides verbose logging for topicsearch.
// When verbose mode is enabled via --verbose or log.verbose in the config,
// diagnostic messages are written to stderr so users can see how the index
// was loaded and how a query was ranked. Output is silent otherwise.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Section prints a section header.
func Section(name string) {
	write("\n=== %s ===\n", name)
}

// Debug prints a diagnostic message.
func Debug(format string, args ...any) {
	write("[DEBUG] "+format+"\n", args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	write("[INFO] "+format+"\n", args...)
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	write("[WARN] "+format+"\n", args...)
}

// write formats to the output when verbose mode is on.
func write(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, format, args...)
}
