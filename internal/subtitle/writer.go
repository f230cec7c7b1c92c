package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the document as SRT, renumbering events from 1
func (w *SRTWriter) Write(doc *Document, out io.Writer) error {
	var sb strings.Builder
	for i, event := range doc.Events {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n", event.Start, event.End))

		// content is already newline terminated
		sb.WriteString(event.Content)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(out, sb.String())
	return err
}

// writes the document as WebVTT
func (w *VTTWriter) Write(doc *Document, out io.Writer) error {
	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for i, event := range doc.Events {
		// optional cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			toVTTTime(event.Start),
			toVTTTime(event.End)))

		sb.WriteString(event.Content)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(out, sb.String())
	return err
}

func toVTTTime(ts string) string {
	return strings.Replace(ts, ",", ".", 1)
}

// renders the document as SRT text
func (d *Document) String() string {
	var sb strings.Builder
	_ = (&SRTWriter{}).Write(d, &sb)
	return sb.String()
}

// WriteTo implements io.WriterTo with SRT output.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// writes the document to path in the given format
func (d *Document) Write(path string, format Format) error {
	writer, err := NewWriter(format)
	if err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writer.Write(d, file); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write subtitles: %w", err)
	}
	return file.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt":
		return FormatVTT
	default:
		return FormatSRT
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	default:
		return ".srt"
	}
}
