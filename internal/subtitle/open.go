package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// reads and parses an SRT file
func Open(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".srt" {
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}

	return Parse(string(data))
}
