package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [srt_file]",
	Short: "Check that an SRT file is well formed",
	Long: `Parse an SRT file and report the first grammar violation with its line
number, or the number of captions when the file is valid.

Examples:
  resub validate movie.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Valid SRT: %d events\n", len(doc.Events))
	return nil
}
