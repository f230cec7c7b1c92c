// Package rebreak re-flows caption text so each line stays within a maximum
// width, cutting only at whitespace and keeping lines of one caption at
// roughly equal length.
package rebreak

import (
	"math"
	"strings"
	"unicode"
)

// DefaultMaxWidth is the standard subtitle line length.
// It may still be exceeded when a word is longer than the width.
const DefaultMaxWidth = 42

// Rebreak collapses the line breaks in text and inserts new ones at word
// boundaries so that no line exceeds maxWidth runes where possible. The
// result always ends with exactly one newline.
func Rebreak(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	// every newline, including the terminating one, counts toward the length
	buf := []rune(strings.ReplaceAll(text, "\n", " "))

	targetLines := lineCount(len(buf), maxWidth)
	if targetLines <= 1 {
		if strings.HasSuffix(text, "\n") {
			buf = buf[:len(buf)-1]
		}
		return string(buf) + "\n"
	}

	var lines []string
	start := 0
	for i := 0; i < targetLines && start < len(buf); i++ {
		rest := buf[start:]
		cut := partition(rest, lineCount(len(rest), maxWidth))

		end := cut + 1
		if line := strings.TrimSpace(string(rest[:end])); line != "" {
			lines = append(lines, line)
		}
		start += end
	}

	if start < len(buf) {
		if tail := strings.TrimSpace(string(buf[start:])); tail != "" {
			lines = append(lines, tail)
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

func lineCount(length, maxWidth int) int {
	return (length + maxWidth - 1) / maxWidth
}

// partition returns the index of the last rune that belongs to the next
// line of text: a whitespace rune, or the last rune of text when the rest
// fits on one line or contains no usable boundary.
func partition(text []rune, targetLines int) int {
	last := len(text) - 1
	if targetLines <= 1 {
		return last
	}

	at := int(math.RoundToEven(float64(len(text))/float64(targetLines))) - 1
	if at > last {
		at = last
	}
	if at < 0 {
		at = 0
	}

	// nearest boundary at or before the ideal point, unless that would
	// leave the line empty
	for i := at; i > 0; i-- {
		if unicode.IsSpace(text[i]) {
			return i
		}
	}

	// otherwise the nearest one after it, so each line makes progress
	for i := at; i <= last; i++ {
		if unicode.IsSpace(text[i]) {
			return i
		}
	}
	return last
}
