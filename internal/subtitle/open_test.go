package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenSRTFile(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	doc, err := Open(srtPath)
	if err != nil {
		t.Fatalf("failed to open SRT file: %v", err)
	}

	if len(doc.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(doc.Events))
	}

	expectedText := "This is a test.\nWith multiple lines.\n"
	if doc.Events[1].Content != expectedText {
		t.Errorf(
			"event 1: expected %q, got %q",
			expectedText,
			doc.Events[1].Content,
		)
	}
}

func TestOpenReportsParseError(t *testing.T) {
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "bad.srt")
	content := "2\n00:00:01,000 --> 00:00:02,000\nText\n\n"
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Open(srtPath)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 1 {
		t.Errorf("expected line 1, got %d", perr.Line)
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	txtPath := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(txtPath, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Open(txtPath)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected 'unsupported' in error, got: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.srt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
