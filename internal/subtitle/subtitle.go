package subtitle

import (
	"io"
)

// represents single caption entry
type Event struct {
	Start   string // HH:MM:SS,mmm, verbatim from input
	End     string
	Content string // one or more lines, each terminated by "\n"
}

// represents complete subtitle document in caption order
type Document struct {
	Events []Event
}

// represents supported output formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// interface for rendering documents
type Writer interface {
	Write(doc *Document, w io.Writer) error
}
