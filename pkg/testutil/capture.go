// Package testutil provides shared test utilities for siun packages.
//
// The capture helpers redirect the process streams, so tests using them
// must not run in parallel with each other.
package testutil

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/ajxudir/siun/pkg/verbose"
	"github.com/stretchr/testify/require"
)

// redirect replaces *stream with a pipe until the returned stop function runs.
// Calling stop more than once returns the same output.
//
// The pipe is drained concurrently so fn cannot block on a full pipe buffer.
//
// Parameters:
//   - t: Testing instance, fails the test if the pipe cannot be created
//   - stream: Address of os.Stdout or os.Stderr
//
// Returns:
//   - func() string: Restores the stream and returns everything written to it
func redirect(t *testing.T, stream **os.File) func() string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	original := *stream
	*stream = w

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	var (
		once     sync.Once
		captured string
	)
	return func() string {
		once.Do(func() {
			*stream = original
			_ = w.Close()
			captured = <-done
		})
		return captured
	}
}

// CaptureStdout returns what fn writes to os.Stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	stop := redirect(t, &os.Stdout)
	defer func() { _ = stop() }()
	fn()
	return stop()
}

// CaptureStderr returns what fn writes to os.Stderr.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	stop := redirect(t, &os.Stderr)
	defer func() { _ = stop() }()
	fn()
	return stop()
}

// CaptureOutput returns what fn writes to os.Stdout and os.Stderr.
//
// Status bar output and diagnostics go to different streams, so command
// tests usually assert on both.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing both streams
//
// Returns:
//   - stdout: Content written to stdout during fn
//   - stderr: Content written to stderr during fn
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	stopOut := redirect(t, &os.Stdout)
	stopErr := redirect(t, &os.Stderr)
	defer func() {
		_ = stopErr()
		_ = stopOut()
	}()

	fn()
	return stopOut(), stopErr()
}

// CaptureDebug enables verbose logging for the duration of fn and returns
// the [DEBUG] lines it produced.
//
// The verbose writer is bound when logging starts, so swapping os.Stderr
// alone does not capture it.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute with verbose logging enabled
//
// Returns:
//   - string: All debug output written during fn
func CaptureDebug(t *testing.T, fn func()) string {
	t.Helper()

	wasEnabled := verbose.IsEnabled()
	buf := &bytes.Buffer{}
	verbose.SetWriter(buf)
	verbose.Enable()
	defer func() {
		verbose.SetWriter(os.Stderr)
		if !wasEnabled {
			verbose.Disable()
		}
	}()

	fn()
	return buf.String()
}
