package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to resolution hints.
// Patterns are checked in order; the first match wins.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "failed to parse state file",
		Hint:       "The state file written by the siun checker is corrupt",
		Resolution: "Run the siun checker again to rewrite it, or delete the file to show Unknown",
	},
	{
		Pattern:    "cannot abbreviate matched criterion",
		Hint:       "The siun checker recorded a criterion name that is too short",
		Resolution: "Give every criterion in the checker configuration a name of at least two characters",
	},
	{
		Pattern:    "invalid output format",
		Hint:       "Unsupported output format",
		Resolution: "Use one of: i3status, fancy, plain",
	},
	{
		Pattern:    "if any flags in the group",
		Hint:       "Conflicting flags",
		Resolution: "--no-update cannot be combined with --no-cache",
	},
}

// GetHint returns an actionable hint for the given error.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
//
// Example:
//
//	hint := errors.GetHint(err)
//	if hint != "" {
//	    fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
//	}
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}
