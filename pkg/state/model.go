// Package state reads the snapshot persisted by the siun update checker.
//
// The checker is a separate process that writes its latest result to a JSON
// state file. This package resolves where that file lives, decodes it strictly
// and substitutes a well-defined default when no file is available. It never
// writes the file and never evaluates update status itself.
package state

import (
	"encoding/json"
	"errors"

	"github.com/ajxudir/siun/pkg/constants"
	"github.com/iancoleman/orderedmap"
)

// TaggedValue is a scalar the checker serialized together with its original type name.
//
// The checker is dynamically typed, so scalars such as timestamps and enum members
// are written as a type tag plus a stringified value. The tag is carried through
// unchanged and never interpreted.
//
// Fields:
//   - Kind: Type tag written by the checker (e.g., "datetime", "State")
//   - Value: Stringified value
type TaggedValue struct {
	Kind  string `json:"py-type"`
	Value string `json:"value"`
}

// UnmarshalJSON decodes a tagged value and requires both keys to be present.
//
// Parameters:
//   - data: JSON object with "py-type" and "value" string members
//
// Returns:
//   - error: When data is not an object or either key is missing or null; otherwise nil
func (t *TaggedValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind  *string `json:"py-type"`
		Value *string `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == nil {
		return errors.New(`tagged value is missing "py-type"`)
	}
	if raw.Value == nil {
		return errors.New(`tagged value is missing "value"`)
	}

	t.Kind = *raw.Kind
	t.Value = *raw.Value
	return nil
}

// State is the full snapshot of one update check.
//
// Only State.Value and the keys of MatchedCriteria drive rendering. The
// remaining fields are decoded so a snapshot can be re-encoded without loss.
//
// Fields:
//   - LastUpdate: Time of the last check, format owned by the checker
//   - CriteriaSettings: Criteria configuration of the checker, opaque
//   - Thresholds: Threshold configuration of the checker, opaque
//   - AvailableUpdates: Identifiers of the pending updates
//   - MatchedCriteria: Criteria that matched, keyed by name in checker order
//   - State: Tagged state code (see constants.State*)
type State struct {
	LastUpdate       TaggedValue           `json:"last_update"`
	CriteriaSettings json.RawMessage       `json:"criteria_settings"`
	Thresholds       json.RawMessage       `json:"thresholds"`
	AvailableUpdates []string              `json:"available_updates"`
	MatchedCriteria  orderedmap.OrderedMap `json:"matched_criteria"`
	State            TaggedValue           `json:"state"`
}

// Default returns the snapshot used when no state file can be read.
//
// The state code is UNKNOWN, the opaque fields encode as JSON null and the
// collections are empty.
//
// Returns:
//   - *State: A fresh default snapshot
func Default() *State {
	criteria := orderedmap.New()
	// Decoded maps do not escape HTML
	criteria.SetEscapeHTML(false)

	return &State{
		CriteriaSettings: json.RawMessage("null"),
		Thresholds:       json.RawMessage("null"),
		AvailableUpdates: []string{},
		MatchedCriteria:  *criteria,
		State:            TaggedValue{Value: constants.StateUnknown},
	}
}

// Code returns the state code that drives rendering.
func (s *State) Code() string {
	return s.State.Value
}

// CriteriaNames returns the matched criterion names in stored order.
func (s *State) CriteriaNames() []string {
	return s.MatchedCriteria.Keys()
}
