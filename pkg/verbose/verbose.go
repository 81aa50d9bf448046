// Package verbose provides debug logging for the siun frontend.
//
// Messages go to stderr with a [DEBUG] prefix and only when enabled through
// --verbose, so stdout always carries nothing but the rendered status line.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// StateResolved logs the state file location computed from the environment.
//
// Parameters:
//   - path: The resolved state file path
func StateResolved(path string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] State file: %s\n", path)
	}
}

// StateLoaded logs a successfully decoded state file.
//
// Parameters:
//   - path: The state file that was read
//   - code: The state code it holds
func StateLoaded(path, code string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] State loaded: %s\n", path)
	_, _ = fmt.Fprintf(w, "        Code: %s\n", code)
}

// StateFallback logs that the default state is used instead of a file.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the path that could not be read, or a placeholder when it is empty
//   - Prints the reason, truncated to keep the log on one screen line
//
// Parameters:
//   - path: The state file that could not be read
//   - reason: Why it could not be read
func StateFallback(path, reason string) {
	if !IsEnabled() {
		return
	}
	if path == "" {
		path = "<none>"
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] Using default state, %s not readable\n", path)
	_, _ = fmt.Fprintf(w, "        Reason: %s\n", truncate(reason, 100))
}

// Rendered logs which output format was produced for which state code.
//
// Parameters:
//   - format: The output format name
//   - code: The state code that was rendered
func Rendered(format, code string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Rendered %s output for state %s\n", format, code)
	}
}

// truncate shortens a string to the specified maximum length in bytes.
//
// The cut never splits a UTF-8 sequence, so the result may be a few bytes
// shorter than maxLen.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
