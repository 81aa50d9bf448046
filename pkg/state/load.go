package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ajxudir/siun/pkg/verbose"
)

// readFileFunc is a variable that holds the os.ReadFile function.
// This allows for dependency injection during testing.
var readFileFunc = os.ReadFile

// requiredFields lists the top-level members every state file must carry.
var requiredFields = []string{
	"last_update",
	"criteria_settings",
	"thresholds",
	"available_updates",
	"matched_criteria",
	"state",
}

// fieldKinds restricts the JSON kind of members that are not opaque.
var fieldKinds = map[string]string{
	"last_update":       "object",
	"available_updates": "array",
	"matched_criteria":  "object",
	"state":             "object",
}

// DecodeError reports a state file that exists but does not hold a valid snapshot.
//
// A corrupt file is a bug in the checker, so callers treat this error as fatal
// instead of rendering the default snapshot.
//
// Fields:
//   - Path: Location of the offending file
//   - Err: The underlying decode failure
type DecodeError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse state file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Load reads the state file at the location resolved from env.
//
// Parameters:
//   - env: Environment values used for path resolution
//
// Returns:
//   - *State: The decoded snapshot, or Default() when no file could be read
//   - error: *DecodeError when the file exists but is invalid; otherwise nil
func Load(env Env) (*State, error) {
	path := Path(env)
	verbose.StateResolved(path)
	return LoadFile(path)
}

// LoadFile reads and decodes the state file at path.
//
// It performs the following operations:
//   - Step 1: Return Default() when path is empty
//   - Step 2: Read the file, returning Default() when it is missing or unreadable
//   - Step 3: Decode the content strictly, failing on any structural problem
//
// Parameters:
//   - path: Location of the state file
//
// Returns:
//   - *State: The decoded snapshot, or Default() when no file could be read
//   - error: *DecodeError when the file exists but is invalid; otherwise nil
func LoadFile(path string) (*State, error) {
	if path == "" {
		verbose.StateFallback(path, "no state file location")
		return Default(), nil
	}

	data, err := readFileFunc(path)
	if err != nil {
		verbose.StateFallback(path, err.Error())
		return Default(), nil
	}

	st, err := Decode(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	verbose.StateLoaded(path, st.Code())
	return st, nil
}

// Decode parses a state file body.
//
// The body must be UTF-8. Every top-level member is required. Tagged values must carry both "py-type"
// and "value", available_updates must be an array of strings and
// matched_criteria an object. Opaque members are stored compacted so that
// encoding and decoding again yields an identical snapshot.
//
// Parameters:
//   - data: Raw state file content
//
// Returns:
//   - *State: The decoded snapshot
//   - error: When data is not a valid snapshot; otherwise nil
func Decode(data []byte) (*State, error) {
	// encoding/json would silently substitute U+FFFD inside strings
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("state file is not valid UTF-8")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}

	for _, name := range requiredFields {
		raw, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("missing field %q", name)
		}
		if want, ok := fieldKinds[name]; ok && jsonKind(raw) != want {
			return nil, fmt.Errorf("field %q must be a JSON %s, got %s", name, want, jsonKind(raw))
		}
	}

	st := &State{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, err
	}

	var err error
	if st.CriteriaSettings, err = compact(st.CriteriaSettings); err != nil {
		return nil, fmt.Errorf("field %q: %w", "criteria_settings", err)
	}
	if st.Thresholds, err = compact(st.Thresholds); err != nil {
		return nil, fmt.Errorf("field %q: %w", "thresholds", err)
	}

	return st, nil
}

// jsonKind names the kind of a raw JSON value from its first significant byte.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

func compact(raw json.RawMessage) (json.RawMessage, error) {
	if raw == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}
