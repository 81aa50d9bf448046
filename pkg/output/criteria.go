package output

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ajxudir/siun/pkg/state"
)

// abbrevLen is the number of leading bytes kept from each criterion name.
const abbrevLen = 2

// CriterionError reports a matched criterion name that cannot be abbreviated.
//
// The checker never writes such names, so this is treated as a corrupt
// snapshot and is fatal rather than silently shortened some other way.
//
// Fields:
//   - Name: The offending criterion name
//   - Reason: Why it cannot be abbreviated
type CriterionError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *CriterionError) Error() string {
	return fmt.Sprintf("cannot abbreviate matched criterion %q: %s", e.Name, e.Reason)
}

// AbbreviateCriteria derives the short criteria list shown in the status bar.
//
// Each matched criterion name is cut to its first two bytes and the results
// are joined with commas in stored order, so "disk-space" and "kernel" become
// "di,ke". No criteria yield an empty string.
//
// Parameters:
//   - st: Snapshot whose matched criteria are abbreviated
//
// Returns:
//   - string: The comma-joined abbreviations
//   - error: *CriterionError when a name is shorter than two bytes or its
//     first two bytes end inside a multi-byte character; otherwise nil
func AbbreviateCriteria(st *state.State) (string, error) {
	names := st.CriteriaNames()
	short := make([]string, 0, len(names))

	for _, name := range names {
		if len(name) < abbrevLen {
			return "", &CriterionError{Name: name, Reason: "name is shorter than two characters"}
		}
		if len(name) > abbrevLen && !utf8.RuneStart(name[abbrevLen]) {
			return "", &CriterionError{Name: name, Reason: "first two bytes split a character"}
		}
		short = append(short, name[:abbrevLen])
	}

	return strings.Join(short, ","), nil
}
