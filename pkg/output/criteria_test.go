package output

import (
	stderrors "errors"
	"testing"

	"github.com/ajxudir/siun/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newState builds a snapshot with the given state code and matched criterion names.
func newState(code string, criteria ...string) *state.State {
	st := state.Default()
	st.State = state.TaggedValue{Kind: "State", Value: code}
	for _, name := range criteria {
		st.MatchedCriteria.Set(name, map[string]interface{}{"weight": 1})
	}
	return st
}

// TestAbbreviateCriteria tests the behavior of AbbreviateCriteria.
//
// It verifies:
//   - Names are cut to two characters and joined in stored order
//   - No criteria yield an empty string
//   - Two-byte characters are kept whole
func TestAbbreviateCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria []string
		expected string
	}{
		{"insertion order", []string{"disk-space", "kernel"}, "di,ke"},
		{"reverse order", []string{"kernel", "disk-space"}, "ke,di"},
		{"single", []string{"pacman"}, "pa"},
		{"exactly two", []string{"ab", "cd"}, "ab,cd"},
		{"empty", nil, ""},
		{"two-byte character", []string{"élan"}, "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AbbreviateCriteria(newState("WARNING_UPDATES", tt.criteria...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestAbbreviateCriteriaInvalid tests the behavior of AbbreviateCriteria with bad names.
//
// It verifies:
//   - Names shorter than two characters fail with *CriterionError
//   - Names whose first two bytes split a character fail with *CriterionError
//   - The failure is reported even when valid names come first
func TestAbbreviateCriteriaInvalid(t *testing.T) {
	tests := []struct {
		name     string
		criteria []string
		bad      string
		reason   string
	}{
		{"one character", []string{"k"}, "k", "shorter than two characters"},
		{"empty name", []string{""}, "", "shorter than two characters"},
		{"after valid names", []string{"kernel", "x"}, "x", "shorter than two characters"},
		{"split character", []string{"aéb"}, "aéb", "split a character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AbbreviateCriteria(newState("CRITICAL_UPDATES", tt.criteria...))
			require.Error(t, err)
			assert.Empty(t, result)

			var critErr *CriterionError
			require.True(t, stderrors.As(err, &critErr))
			assert.Equal(t, tt.bad, critErr.Name)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}
