package cli

import (
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [srt_file]",
	Short: "Renumber an SRT file or convert it to WebVTT",
	Long: `Parse an SRT file and render it again without touching caption text.
Counters are renumbered from 1.

Examples:
  resub convert movie.srt -o movie.clean.srt
  resub convert movie.srt --format vtt -o movie.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := parseFormat(formatStr)
	if err != nil {
		return err
	}

	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}

	return writeDocument(cmd, doc, format, outputPath)
}
