// Package output renders a state snapshot for status bars and terminals.
//
// Three formats are supported: i3status emits a JSON block for i3status-rust
// custom blocks, plain emits a single human-readable line and fancy emits the
// same line wrapped in an ANSI foreground color.
package output

import (
	"fmt"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatI3status outputs a JSON block for status-line tools.
	FormatI3status Format = "i3status"
	// FormatPlain outputs a single line of text. This is the default.
	FormatPlain Format = "plain"
	// FormatFancy outputs the plain line colorized with ANSI escapes.
	FormatFancy Format = "fancy"
)

// Formats lists every supported format in help order.
var Formats = []Format{FormatI3status, FormatFancy, FormatPlain}

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. An empty string selects FormatPlain.
//
// Parameters:
//   - s: Format string to parse (e.g., "i3status", "Plain", "FANCY")
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no supported format; otherwise nil
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FormatPlain, nil
	case string(FormatI3status):
		return FormatI3status, nil
	case string(FormatPlain):
		return FormatPlain, nil
	case string(FormatFancy):
		return FormatFancy, nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid: %s)", s, FormatNames())
	}
}

// FormatNames returns the supported format names joined for help and error text.
//
// Returns:
//   - string: Names separated by ", "
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
