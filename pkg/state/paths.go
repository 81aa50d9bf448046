package state

import (
	"os"
	"path/filepath"

	"github.com/ajxudir/siun/pkg/constants"
)

// Env holds the environment values used to locate the state file.
//
// Path resolution takes an Env instead of reading the process environment so
// it can be exercised without touching os.Setenv.
//
// Fields:
//   - StateHome: Value of XDG_STATE_HOME; empty when unset
//   - Home: Value of HOME; empty when unset
type Env struct {
	StateHome string
	Home      string
}

// EnvFromOS captures XDG_STATE_HOME and HOME from the process environment.
//
// Returns:
//   - Env: The captured values, empty strings for unset variables
func EnvFromOS() Env {
	return Env{
		StateHome: os.Getenv("XDG_STATE_HOME"),
		Home:      os.Getenv("HOME"),
	}
}

// Dir returns the directory holding the state file.
//
// XDG_STATE_HOME is used as-is when set. Otherwise the directory is
// $HOME/.local/state/siun, which degrades to the relative path
// .local/state/siun when HOME is empty. Nothing is created on disk.
//
// Parameters:
//   - env: Environment values to resolve against
//
// Returns:
//   - string: The state directory
func Dir(env Env) string {
	if env.StateHome != "" {
		return env.StateHome
	}
	return filepath.Join(env.Home, ".local", "state", constants.AppName)
}

// Path returns the full path of the state file.
//
// Parameters:
//   - env: Environment values to resolve against
//
// Returns:
//   - string: Dir(env) joined with constants.StateFileName
func Path(env Env) string {
	return filepath.Join(Dir(env), constants.StateFileName)
}
