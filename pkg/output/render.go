package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ajxudir/siun/pkg/constants"
	"github.com/ajxudir/siun/pkg/state"
	"github.com/ajxudir/siun/pkg/verbose"
	"github.com/muesli/termenv"
)

// Block is the JSON object consumed by i3status-rust custom blocks.
//
// State and Text are nil for state codes this frontend does not know, which
// encodes as JSON null and leaves the block in its default look.
//
// Fields:
//   - Icon: Icon name, always constants.BarIcon
//   - State: Block state (Idle, Warning, Critical), nil for unknown codes
//   - Text: Block text, nil for unknown codes
type Block struct {
	Icon  string  `json:"icon"`
	State *string `json:"state"`
	Text  *string `json:"text"`
}

// Formatter renders snapshots in one output format.
//
// Fields:
//   - format: The output format
//   - writer: Destination for rendered output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for rendered output, normally os.Stdout
//
// Returns:
//   - *Formatter: A new formatter instance
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the current format.
func (f *Formatter) Format() Format {
	return f.format
}

// Render writes st as one line terminated by a newline.
//
// Nothing is written when st cannot be rendered.
//
// Parameters:
//   - st: The snapshot to render
//
// Returns:
//   - error: *CriterionError for unabbreviable criteria in i3status format,
//     write errors, or an error for an unsupported format; otherwise nil
func (f *Formatter) Render(st *state.State) error {
	var err error
	switch f.format {
	case FormatI3status:
		err = f.renderI3status(st)
	case FormatPlain:
		err = f.renderPlain(st)
	case FormatFancy:
		err = f.renderFancy(st)
	default:
		return fmt.Errorf("unsupported output format %q", f.format)
	}
	if err != nil {
		return err
	}

	verbose.Rendered(f.Format().String(), st.Code())
	return nil
}

// renderI3status writes the JSON block for st.
//
// The criteria abbreviation is derived before the state code is looked at,
// so an unabbreviable name fails every state code in this format.
func (f *Formatter) renderI3status(st *state.State) error {
	abbrev, err := AbbreviateCriteria(st)
	if err != nil {
		return err
	}

	block := Block{Icon: constants.BarIcon}
	if s, ok := BarState(st.Code()); ok {
		block.State = &s
	}
	if text, ok := BarText(st.Code(), abbrev); ok {
		block.Text = &text
	}

	return f.WriteJSON(block)
}

func (f *Formatter) renderPlain(st *state.State) error {
	_, err := fmt.Fprintln(f.writer, Label(st.Code()))
	return err
}

func (f *Formatter) renderFancy(st *state.State) error {
	styled := termenv.String(Label(st.Code())).Foreground(Color(st.Code()))
	_, err := fmt.Fprintln(f.writer, styled.String())
	return err
}

// WriteJSON writes data as compact JSON followed by a newline.
//
// HTML characters are written as-is so criterion names reach the bar unchanged.
//
// Parameters:
//   - data: Data structure to encode as JSON (must be marshallable)
//
// Returns:
//   - error: When encoding fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// BarState maps a state code to the i3status block state.
//
// Parameters:
//   - code: State code from the snapshot
//
// Returns:
//   - string: Idle, Warning or Critical
//   - bool: false when code is not a known state code
func BarState(code string) (string, bool) {
	switch code {
	case constants.StateOK, constants.StateAvailableUpdates, constants.StateUnknown:
		return constants.BarIdle, true
	case constants.StateWarningUpdates:
		return constants.BarWarning, true
	case constants.StateCriticalUpdates:
		return constants.BarCritical, true
	default:
		return "", false
	}
}

// BarText maps a state code to the i3status block text.
//
// Parameters:
//   - code: State code from the snapshot
//   - abbrev: Criteria abbreviation, shown for warning and critical states
//
// Returns:
//   - string: The block text
//   - bool: false when code is not a known state code
func BarText(code, abbrev string) (string, bool) {
	switch code {
	case constants.StateOK, constants.StateAvailableUpdates:
		return "", true
	case constants.StateWarningUpdates, constants.StateCriticalUpdates:
		return abbrev, true
	case constants.StateUnknown:
		return constants.BarUnknownText, true
	default:
		return "", false
	}
}

// Label maps a state code to the text used by the plain and fancy formats.
//
// UNKNOWN has no label of its own and shares the fallback with unrecognized codes.
//
// Parameters:
//   - code: State code from the snapshot
//
// Returns:
//   - string: The human-readable label
func Label(code string) string {
	switch code {
	case constants.StateOK:
		return constants.LabelOK
	case constants.StateAvailableUpdates:
		return constants.LabelAvailableUpdates
	case constants.StateWarningUpdates:
		return constants.LabelWarningUpdates
	case constants.StateCriticalUpdates:
		return constants.LabelCriticalUpdates
	default:
		return constants.LabelUnknown
	}
}

// Color maps a state code to the foreground color of the fancy format.
//
// Parameters:
//   - code: State code from the snapshot
//
// Returns:
//   - termenv.ANSIColor: Green, blue, yellow or red; magenta for anything else
func Color(code string) termenv.ANSIColor {
	switch code {
	case constants.StateOK:
		return termenv.ANSIGreen
	case constants.StateAvailableUpdates:
		return termenv.ANSIBlue
	case constants.StateWarningUpdates:
		return termenv.ANSIYellow
	case constants.StateCriticalUpdates:
		return termenv.ANSIRed
	default:
		return termenv.ANSIMagenta
	}
}
