// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for state codes
// and the labels they are rendered with.
package constants

// State codes written by the update checker into the state file.
// The value of the "state" field is always one of these, or something
// a newer checker introduced that this frontend does not know yet.
const (
	// StateOK indicates the system is up to date.
	StateOK = "OK"

	// StateAvailableUpdates indicates updates exist but none matched a criterion.
	StateAvailableUpdates = "AVAILABLE_UPDATES"

	// StateWarningUpdates indicates matched criteria crossed the warning threshold.
	StateWarningUpdates = "WARNING_UPDATES"

	// StateCriticalUpdates indicates matched criteria crossed the critical threshold.
	StateCriticalUpdates = "CRITICAL_UPDATES"

	// StateUnknown indicates no check result is available.
	StateUnknown = "UNKNOWN"
)

// Status bar states understood by i3status-rust custom blocks.
const (
	// BarIdle is the neutral block state.
	BarIdle = "Idle"

	// BarWarning highlights the block as a warning.
	BarWarning = "Warning"

	// BarCritical highlights the block as critical.
	BarCritical = "Critical"
)

// Status bar block constants.
const (
	// BarIcon is the icon name shown next to the block.
	BarIcon = "narchive"

	// BarUnknownText is shown in the block when no check result is available.
	BarUnknownText = "…"
)

// Human-readable labels used by the plain and fancy output formats.
const (
	// LabelOK is shown for StateOK.
	LabelOK = "Ok"

	// LabelAvailableUpdates is shown for StateAvailableUpdates.
	LabelAvailableUpdates = "Updates available"

	// LabelWarningUpdates is shown for StateWarningUpdates.
	LabelWarningUpdates = "Updates recommended"

	// LabelCriticalUpdates is shown for StateCriticalUpdates.
	LabelCriticalUpdates = "Updates required"

	// LabelUnknown is shown for StateUnknown and for any unrecognized code.
	LabelUnknown = "Unknown"
)

// State file location constants.
const (
	// AppName is the directory name used below the XDG state directory.
	AppName = "siun"

	// StateFileName is the name of the state file inside the state directory.
	StateFileName = "state.json"
)
