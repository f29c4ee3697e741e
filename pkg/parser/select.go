package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/query"
)

// Select parses a SELECT statement that ends at the closing parenthesis of
// the enclosing subquery (or at end of input). The statement text is handed
// to the query grammar and the result is a *query.Statement.
type Select struct{}

func (Select) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if !Keyword("SELECT").Check(c) && !Keyword("WITH").Check(c) {
		return nil, c.Fail("SELECT query")
	}

	text := c.Rest()[:statementLength(c.Rest())]
	text = strings.TrimRight(text, " \t\r\n\f\v")

	stmt, err := query.ParseString(text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			c.Reset(begin + perr.Position().Offset)
		}
		return nil, c.Fail("SELECT query")
	}

	c.Advance(len(text))
	stmt.Loc = c.Span(begin)
	return stmt, nil
}

// statementLength returns the length of the prefix of s up to the first
// unbalanced closing parenthesis, skipping quoted text and comments.
func statementLength(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		case '\'', '`', '"':
			i = closingQuote(s, i)
		case '-':
			if strings.HasPrefix(s[i:], "--") {
				j := strings.IndexByte(s[i:], '\n')
				if j < 0 {
					return len(s)
				}
				i += j
			}
		case '/':
			if strings.HasPrefix(s[i:], "/*") {
				j := strings.Index(s[i+2:], "*/")
				if j < 0 {
					return len(s)
				}
				i += j + 3
			}
		}
	}
	return len(s)
}

// closingQuote returns the index of the quote closing the one at s[open], or
// the last index of s when it is unterminated.
func closingQuote(s string, open int) int {
	q := s[open]
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i
		}
	}
	return len(s) - 1
}
