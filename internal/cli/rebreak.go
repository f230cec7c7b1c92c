package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mgpai22/resub/internal/rebreak"
	"github.com/mgpai22/resub/internal/subtitle"
	"github.com/spf13/cobra"
)

const maxWidthEnv = "RESUB_MAX_WIDTH"

var rebreakCmd = &cobra.Command{
	Use:   "rebreak [srt_file]",
	Short: "Re-insert line breaks so captions fit a maximum width",
	Long: `Remove the existing line breaks of every caption and re-insert them at
word boundaries so that no line exceeds the maximum width, keeping lines
within a caption at roughly the same length.

A word longer than the width is kept whole on its own line.

Examples:
  resub rebreak movie.srt
  resub rebreak movie.srt --width 32 -o movie.fixed.srt
  resub rebreak movie.srt --format vtt -o movie.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runRebreak,
}

func init() {
	rootCmd.AddCommand(rebreakCmd)

	rebreakCmd.Flags().
		IntP("width", "w", rebreak.DefaultMaxWidth, "Maximum line width in characters (or set "+maxWidthEnv+" env var)")
	rebreakCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
	rebreakCmd.Flags().
		Int("concurrency", 1, "Number of parallel rebreak workers")
}

func runRebreak(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	width, _ := cmd.Flags().GetInt("width")
	formatStr, _ := cmd.Flags().GetString("format")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	outputPath, _ := cmd.Flags().GetString("output")

	width, err := resolveMaxWidth(
		width,
		cmd.Flags().Changed("width"),
		os.Getenv(maxWidthEnv),
	)
	if err != nil {
		return err
	}

	format, err := parseFormat(formatStr)
	if err != nil {
		return err
	}

	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}

	logger.Infow("Starting rebreak",
		"input", subtitlePath,
		"output", outputPath,
		"width", width,
		"format", format,
		"concurrency", concurrency,
	)

	doc, err := openDocument(subtitlePath)
	if err != nil {
		return err
	}

	texts := make([]string, len(doc.Events))
	for i, event := range doc.Events {
		texts[i] = event.Content
	}

	results, err := rebreak.All(cmd.Context(), texts, width, concurrency)
	if err != nil {
		return fmt.Errorf("rebreak failed: %w", err)
	}
	for i := range doc.Events {
		doc.Events[i].Content = results[i]
	}

	logger.Debugw("Rebreak complete", "events", len(doc.Events))

	return writeDocument(cmd, doc, format, outputPath)
}

// flag value wins when set explicitly, then the environment, then the default
func resolveMaxWidth(flagValue int, flagChanged bool, envValue string) (int, error) {
	width := flagValue
	if !flagChanged && strings.TrimSpace(envValue) != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(envValue))
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", maxWidthEnv, envValue, err)
		}
		width = parsed
	}
	if width <= 0 {
		return 0, fmt.Errorf("width must be positive, got %d", width)
	}
	return width, nil
}

func parseFormat(formatStr string) (subtitle.Format, error) {
	switch strings.ToLower(strings.TrimSpace(formatStr)) {
	case "srt":
		return subtitle.FormatSRT, nil
	case "vtt":
		return subtitle.FormatVTT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use srt or vtt", formatStr)
	}
}

func openDocument(subtitlePath string) (*subtitle.Document, error) {
	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	logger.Debugw("Parsing subtitle file", "path", subtitlePath)
	doc, err := subtitle.Open(subtitlePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	logger.Infow("Parsed subtitle file", "events", len(doc.Events))
	return doc, nil
}

func writeDocument(
	cmd *cobra.Command,
	doc *subtitle.Document,
	format subtitle.Format,
	outputPath string,
) error {
	if outputPath == "" {
		writer, err := subtitle.NewWriter(format)
		if err != nil {
			return err
		}
		return writer.Write(doc, cmd.OutOrStdout())
	}

	if err := doc.Write(outputPath, format); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Infow("Wrote output file", "path", outputPath, "events", len(doc.Events))
	return nil
}
