package parser

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type (
	// Mismatch is a soft failure: the rule did not match at Pos. Callers
	// trying alternatives reset the cursor and move on.
	Mismatch struct {
		Pos      int
		Expected string
	}

	// SyntaxError is a fatal failure. The input is recognizably malformed and
	// no alternative may be tried.
	SyntaxError struct {
		Pos int
		Msg string
	}

	// ParseError is returned by the Parser entry points. It locates the
	// failure in the input and carries either the deepest expectation (for
	// soft failures) or the fatal error.
	ParseError struct {
		Pos      int
		Line     int
		Column   int
		Expected string
		Excerpt  string
		Err      error
	}
)

func (m *Mismatch) Error() string {
	return fmt.Sprintf("expected %s at position %d", m.Expected, m.Pos)
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Error() string {
	var msg string
	if e.Expected != "" {
		msg = fmt.Sprintf("cannot parse expression at line %d, column %d: expected %s", e.Line, e.Column, e.Expected)
	} else {
		var syn *SyntaxError
		if errors.As(e.Err, &syn) {
			msg = fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, syn.Msg)
		} else {
			msg = fmt.Sprintf("cannot parse expression at line %d, column %d: %v", e.Line, e.Column, e.Err)
		}
	}

	if e.Excerpt == "" {
		return msg
	}
	return msg + "\n" + e.Excerpt
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsMismatch reports whether err is a soft failure.
func IsMismatch(err error) bool {
	var m *Mismatch
	return errors.As(err, &m)
}

// IsSyntaxError reports whether err is a fatal failure.
func IsSyntaxError(err error) bool {
	var s *SyntaxError
	return errors.As(err, &s)
}

func newParseError(input string, pos int, expected string, err error) *ParseError {
	line, col, lineText := locate(input, pos)
	return &ParseError{
		Pos:      pos,
		Line:     line,
		Column:   col,
		Expected: expected,
		Excerpt:  lineText + "\n" + strings.Repeat(" ", col-1) + "^",
		Err:      err,
	}
}

// locate converts a byte offset into a 1-based line and column and returns
// the text of that line.
func locate(input string, pos int) (line, col int, lineText string) {
	pos = max(0, min(pos, len(input)))

	lineStart := strings.LastIndexByte(input[:pos], '\n') + 1
	lineEnd := strings.IndexByte(input[pos:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += pos
	}

	line = strings.Count(input[:pos], "\n") + 1
	col = pos - lineStart + 1
	return line, col, input[lineStart:lineEnd]
}
