package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStateConstants tests the behavior of state code constants.
//
// It verifies:
//   - State codes match the values written by the update checker
//   - Prevents accidental changes to state code values
func TestStateConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"StateOK", StateOK, "OK"},
		{"StateAvailableUpdates", StateAvailableUpdates, "AVAILABLE_UPDATES"},
		{"StateWarningUpdates", StateWarningUpdates, "WARNING_UPDATES"},
		{"StateCriticalUpdates", StateCriticalUpdates, "CRITICAL_UPDATES"},
		{"StateUnknown", StateUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant, "constant %s has unexpected value", tt.name)
		})
	}
}

// TestBarConstants tests the behavior of status bar constants.
//
// It verifies:
//   - Block states use the i3status-rust spelling
//   - Icon and unknown text have the expected values
func TestBarConstants(t *testing.T) {
	assert.Equal(t, "Idle", BarIdle)
	assert.Equal(t, "Warning", BarWarning)
	assert.Equal(t, "Critical", BarCritical)
	assert.Equal(t, "narchive", BarIcon)
	assert.Equal(t, "…", BarUnknownText)
}

// TestLabelsAreDistinct tests the behavior of label uniqueness.
//
// It verifies:
//   - Every state code renders with a different label
func TestLabelsAreDistinct(t *testing.T) {
	labels := map[string]string{
		"LabelOK":               LabelOK,
		"LabelAvailableUpdates": LabelAvailableUpdates,
		"LabelWarningUpdates":   LabelWarningUpdates,
		"LabelCriticalUpdates":  LabelCriticalUpdates,
		"LabelUnknown":          LabelUnknown,
	}

	seen := make(map[string]string)
	for name, label := range labels {
		assert.NotEmpty(t, label, "label %s should not be empty", name)
		if existingName, exists := seen[label]; exists {
			t.Errorf("Label %s has same value as %s: %s", name, existingName, label)
		}
		seen[label] = name
	}
}

// TestStateFileConstants tests the behavior of state file location constants.
//
// It verifies:
//   - The application directory and file name match the checker's layout
func TestStateFileConstants(t *testing.T) {
	assert.Equal(t, "siun", AppName)
	assert.Equal(t, "state.json", StateFileName)
}
