package cli

import (
	"github.com/mgpai22/resub/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "resub",
	Short: "Re-flow SubRip subtitle lines to a maximum width",
	Long: `Resub is a CLI tool that parses SubRip (SRT) subtitle files and
re-inserts line breaks at word boundaries so that no line exceeds a
maximum width, keeping the lines of each caption balanced.

Counters are renumbered from 1 on output.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

// Execute runs the root command and returns the process exit code.
// Cobra has already reported the error by the time it is returned.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (default: standard output)")
}
