// Package errors provides the error types and exit codes of the siun frontend.
//
// Commands wrap failures in an ExitError so the entry point can map them to
// a process exit code:
//
//	return errors.NewExitError(errors.ExitFailure, err)
//
// Exit Codes:
//
// Status bars read the exit code of every invocation:
//   - ExitSuccess (0): The state was rendered
//   - ExitFailure (2): The state file is corrupt or the command failed
//   - ExitConfigError (3): A flag value was invalid
//
// Hints:
//
// GetHint returns an actionable suggestion for known failures:
//
//	if hint := errors.GetHint(err); hint != "" {
//	    fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
//	}
package errors
