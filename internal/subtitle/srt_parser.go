package subtitle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kinds of SRT grammar violation, wrapped by ParseError.
var (
	ErrInvalidCounter      = errors.New("invalid counter")
	ErrInvalidTiming       = errors.New("invalid timing info")
	ErrUnexpectedBlankLine = errors.New("unexpected blank line")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
)

var timingRegex = regexp.MustCompile(
	`^(\d\d:\d\d:\d\d,\d\d\d) --> (\d\d:\d\d:\d\d,\d\d\d)$`,
)

// ParseError reports the input line at which the SRT grammar was violated.
type ParseError struct {
	Line int
	Err  error
	// extra context appended to the message, e.g. the expected counter
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("line %d: %v, %s", e.Line, e.Err, e.Detail)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type parseState int

const (
	stateCounter parseState = iota
	stateTiming
	stateContent
)

type parser struct {
	doc     *Document
	state   parseState
	counter int
	event   Event
}

// Parse converts a whole SRT document into its events.
func Parse(text string) (*Document, error) {
	p := &parser{
		doc:     &Document{Events: []Event{}},
		state:   stateCounter,
		counter: 1,
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lineNum := i + 1
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSuffix(line, "\r")

		if err := p.feed(line, lineNum); err != nil {
			return nil, err
		}
	}

	if err := p.finish(len(lines)); err != nil {
		return nil, err
	}
	return p.doc, nil
}

func (p *parser) feed(line string, lineNum int) error {
	blank := line == ""

	switch p.state {
	case stateCounter:
		if blank {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n != p.counter {
			return &ParseError{
				Line:   lineNum,
				Err:    ErrInvalidCounter,
				Detail: fmt.Sprintf("expected %d", p.counter),
			}
		}
		p.counter++
		p.state = stateTiming

	case stateTiming:
		if blank {
			return &ParseError{Line: lineNum, Err: ErrUnexpectedBlankLine}
		}
		matches := timingRegex.FindStringSubmatch(line)
		if matches == nil {
			return &ParseError{Line: lineNum, Err: ErrInvalidTiming}
		}
		p.event.Start, p.event.End = matches[1], matches[2]
		p.state = stateContent

	case stateContent:
		if blank {
			p.flush()
			return nil
		}
		p.event.Content += line + "\n"

	default:
		return fmt.Errorf("unknown parse state %d", p.state)
	}

	return nil
}

// flush appends the in-progress event and starts the next one.
func (p *parser) flush() {
	p.doc.Events = append(p.doc.Events, p.event)
	p.event = Event{}
	p.state = stateCounter
}

// finish treats end of input as an implicit trailing blank line.
func (p *parser) finish(lastLine int) error {
	switch p.state {
	case stateContent:
		p.flush()
	case stateTiming:
		return &ParseError{Line: lastLine, Err: ErrUnexpectedEOF}
	}
	return nil
}
