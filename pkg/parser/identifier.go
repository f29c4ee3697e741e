package parser

import (
	"strings"

	"github.com/pseudomuto/chexpr/pkg/ast"
)

type (
	// Identifier parses a bare name ([A-Za-z_][A-Za-z0-9_]*) or a back-quoted
	// one. Back-quoted names may contain anything, including dots.
	Identifier struct{}

	// CompoundIdentifier parses a dotted name such as db.table.column into a
	// single Identifier whose Name is the full dotted text. A dot joins the
	// name only when a letter, underscore or back quote follows it, so t.1
	// reads as t followed by a tuple access and a. b stops at a.
	CompoundIdentifier struct{}
)

func (Identifier) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()

	name, n, quoted, err := readBackQuoted(c.Rest())
	if quoted {
		if err != nil {
			return nil, &SyntaxError{Pos: begin + n, Msg: "cannot parse back-quoted identifier: " + err.Error()}
		}
		c.Advance(n)
		return &ast.Identifier{Loc: c.Span(begin), Name: name}, nil
	}

	if n := scanName(c.Rest()); n > 0 {
		name := c.Rest()[:n]
		c.Advance(n)
		return &ast.Identifier{Loc: c.Span(begin), Name: name}, nil
	}

	return nil, c.Fail("identifier")
}

func (CompoundIdentifier) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()

	var parts []string
	for {
		node, err := Identifier{}.Parse(c)
		if err != nil {
			return nil, err
		}
		parts = append(parts, node.(*ast.Identifier).Name)

		// The dot belongs to the name only when another segment follows.
		if c.Peek() != '.' || !(isAlpha(c.PeekAt(1)) || c.PeekAt(1) == '`') {
			break
		}
		c.Advance(1)
	}

	return &ast.Identifier{Loc: c.Span(begin), Name: strings.Join(parts, ".")}, nil
}

// scanName returns the length of the bare identifier at the start of s.
func scanName(s string) int {
	if len(s) == 0 || !isAlpha(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	return i
}
