package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExitCodes tests the exit code constants.
//
// It verifies that:
//   - ExitSuccess equals 0
//   - ExitFailure equals 2
//   - ExitConfigError equals 3
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 2, ExitFailure)
	assert.Equal(t, 3, ExitConfigError)
}

// TestExitError tests the ExitError struct and its methods.
//
// It verifies that:
//   - Error() returns the Message field when set
//   - Error() returns wrapped error message when Err is set
//   - Error() returns "exit code N" when neither is set
//   - Unwrap() returns the wrapped error
func TestExitError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := &ExitError{Code: ExitFailure, Message: "test message"}
		assert.Equal(t, "test message", err.Error())
		assert.Equal(t, ExitFailure, err.Code)
	})

	t.Run("with wrapped error", func(t *testing.T) {
		innerErr := stderrors.New("inner error")
		err := &ExitError{Code: ExitConfigError, Err: innerErr}
		assert.Equal(t, "inner error", err.Error())
		assert.Equal(t, innerErr, err.Unwrap())
	})

	t.Run("with neither", func(t *testing.T) {
		err := &ExitError{Code: ExitConfigError}
		assert.Equal(t, "exit code 3", err.Error())
	})
}

// TestNewExitError tests the NewExitError and NewExitErrorf constructors.
//
// It verifies that:
//   - Code and Err fields are set correctly
//   - Message is formatted properly
func TestNewExitError(t *testing.T) {
	innerErr := stderrors.New("test error")
	err := NewExitError(ExitConfigError, innerErr)
	assert.Equal(t, ExitConfigError, err.Code)
	assert.Equal(t, innerErr, err.Err)

	errf := NewExitErrorf(ExitFailure, "failed: %s", "reason")
	assert.Equal(t, ExitFailure, errf.Code)
	assert.Equal(t, "failed: reason", errf.Message)
}

// TestGetExitCode tests the GetExitCode function.
//
// It verifies that:
//   - Nil error returns ExitSuccess
//   - ExitError returns its Code, also when wrapped
//   - Plain error returns ExitFailure
func TestGetExitCode(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, ExitSuccess, GetExitCode(nil))
	})

	t.Run("ExitError", func(t *testing.T) {
		err := NewExitError(ExitConfigError, stderrors.New("test"))
		assert.Equal(t, ExitConfigError, GetExitCode(err))
	})

	t.Run("wrapped ExitError", func(t *testing.T) {
		inner := NewExitError(ExitConfigError, stderrors.New("test"))
		wrapped := fmt.Errorf("check: %w", inner)
		assert.Equal(t, ExitConfigError, GetExitCode(wrapped))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, ExitFailure, GetExitCode(stderrors.New("plain error")))
	})
}

// TestIsExitError tests the IsExitError function.
//
// It verifies that:
//   - ExitError values are detected and returned
//   - Other errors are rejected
func TestIsExitError(t *testing.T) {
	exitErr, ok := IsExitError(NewExitError(ExitFailure, nil))
	assert.True(t, ok)
	assert.Equal(t, ExitFailure, exitErr.Code)

	exitErr, ok = IsExitError(stderrors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, exitErr)
}

// TestHints tests the GetHint function.
//
// It verifies that:
//   - Nil and unknown errors have no hint
//   - Known failures map to their hint, also when wrapped in an ExitError
func TestHints(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, GetHint(nil))
	})

	t.Run("unknown pattern", func(t *testing.T) {
		assert.Empty(t, GetHint(stderrors.New("completely unknown error xyz123")))
	})

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "corrupt state file",
			err:      NewExitError(ExitFailure, stderrors.New("failed to parse state file /s/state.json: missing field \"state\"")),
			contains: "Run the siun checker again",
		},
		{
			name:     "short criterion",
			err:      stderrors.New(`cannot abbreviate matched criterion "k": name is shorter than two characters`),
			contains: "at least two characters",
		},
		{
			name:     "invalid format",
			err:      stderrors.New(`Invalid output format "json"`),
			contains: "i3status, fancy, plain",
		},
		{
			name:     "conflicting flags",
			err:      stderrors.New("if any flags in the group [no-update no-cache] are set none of the others can be"),
			contains: "--no-update cannot be combined with --no-cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetHint(tt.err), tt.contains)
		})
	}
}
