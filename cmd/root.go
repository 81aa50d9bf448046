// Package cmd implements the command-line interface for siun.
// It prints the result of the last update check in formats suited for
// status bars and terminals.
package cmd

import (
	"fmt"
	"os"

	"github.com/ajxudir/siun/pkg/errors"
	"github.com/ajxudir/siun/pkg/verbose"
	"github.com/spf13/cobra"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool

var rootCmd = &cobra.Command{
	Use:   "siun",
	Short: "Status bar frontend for the siun update checker",
	Long: `Show the result of the last siun update check.

The checker writes its result to $XDG_STATE_HOME/state.json
(default: ~/.local/state/siun/state.json). This command only reads that file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		// Build warnings only go to the debug log; stdout belongs to the status bar
		if warnings := GetBuildWarnings(); warnings != "" {
			verbose.Info(warnings)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 2: The state could not be rendered
//   - 3: Invalid flag value
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		if hint := errors.GetHint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output on stderr")

	// -v/--version is a LOCAL flag so it only works on the root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
}
