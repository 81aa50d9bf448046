package cmd

import (
	"github.com/ajxudir/siun/pkg/errors"
	"github.com/ajxudir/siun/pkg/output"
	"github.com/ajxudir/siun/pkg/state"
	"github.com/ajxudir/siun/pkg/verbose"
	"github.com/spf13/cobra"
)

var (
	checkOutputFlag    string
	checkStateFileFlag string
	checkCacheFlag     bool
	checkNoCacheFlag   bool
	checkNoUpdateFlag  bool
	checkQuietFlag     bool
)

// envFunc captures the environment used to locate the state file.
// Tests replace it to avoid mutating the process environment.
var envFunc = state.EnvFromOS

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print the result of the last update check",
	Long: `Print the result of the last update check written by the siun checker.

Output formats:
  plain     One line of text (default)
  fancy     One line of text colored by severity
  i3status  JSON block for i3status-rust custom blocks

A missing state file is reported as Unknown. A corrupt state file is an error.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkOutputFlag, "output-format", "o", "", "Output format: "+output.FormatNames()+" (default: plain)")
	checkCmd.Flags().StringVar(&checkStateFileFlag, "state-file", "", "Read this state file instead of the one in the XDG state directory")

	// Accepted so status bar configs shared with the checker keep working
	checkCmd.Flags().BoolVarP(&checkCacheFlag, "cache", "c", false, "Use cached check results (handled by the siun checker)")
	checkCmd.Flags().BoolVarP(&checkNoCacheFlag, "no-cache", "n", false, "Ignore cached check results (handled by the siun checker)")
	checkCmd.Flags().BoolVarP(&checkNoUpdateFlag, "no-update", "U", false, "Skip refreshing the package database (handled by the siun checker)")
	checkCmd.Flags().BoolVarP(&checkQuietFlag, "quiet", "q", false, "Suppress checker progress output (handled by the siun checker)")
	checkCmd.MarkFlagsMutuallyExclusive("no-update", "no-cache")
}

// runCheck executes the check command.
//
// It performs the following operations:
//   - Step 1: Parse the output format (default: plain) and reject an empty --state-file
//   - Step 2: Load the state file, falling back to the default state when absent
//   - Step 3: Render the state to stdout
//
// Parameters:
//   - cmd: The cobra command, used for its output writer
//   - args: Unused
//
// Returns:
//   - error: ExitError with ExitConfigError for an invalid format or an empty
//     --state-file, ExitFailure
//     for a corrupt state file or a render failure; otherwise nil
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(checkOutputFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	if cmd.Flags().Changed("state-file") && checkStateFileFlag == "" {
		return errors.NewExitErrorf(errors.ExitConfigError, "--state-file must not be empty")
	}

	if checkCacheFlag || checkNoCacheFlag || checkNoUpdateFlag || checkQuietFlag {
		verbose.Info("Cache, update and quiet flags only affect the siun checker; ignoring")
	}

	st, err := loadCheckState()
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	if err := output.NewFormatter(format, cmd.OutOrStdout()).Render(st); err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	return nil
}

// loadCheckState loads the state from --state-file or the XDG location.
//
// Returns:
//   - *state.State: The loaded or default state
//   - error: *state.DecodeError for a corrupt file; otherwise nil
func loadCheckState() (*state.State, error) {
	if checkStateFileFlag != "" {
		verbose.StateResolved(checkStateFileFlag)
		return state.LoadFile(checkStateFileFlag)
	}
	return state.Load(envFunc())
}
