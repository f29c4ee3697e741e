package parser

import "strings"

// Token matches a fixed piece of text: punctuation or a keyword.
type Token struct {
	Text string

	// CaseInsensitive compares ASCII letters without regard to case.
	CaseInsensitive bool

	// WordBoundary requires that the text is not immediately followed by a
	// name character, so AS does not match the start of ASC.
	WordBoundary bool
}

// Punct returns a case-sensitive token without a word boundary.
func Punct(text string) Token {
	return Token{Text: text}
}

// Keyword returns a case-insensitive, word-bounded token.
func Keyword(text string) Token {
	return Token{Text: text, CaseInsensitive: true, WordBoundary: true}
}

// Ignore consumes the token if it is next in the input. On failure it records
// the token as expected and leaves the cursor unchanged.
func (t Token) Ignore(c *Cursor) bool {
	if t.match(c) {
		c.Advance(len(t.Text))
		return true
	}

	_ = c.Fail(t.Text)
	return false
}

// Expect is Ignore returning the soft failure as an error.
func (t Token) Expect(c *Cursor) error {
	if t.Ignore(c) {
		return nil
	}
	return &Mismatch{Pos: c.Pos(), Expected: t.Text}
}

// Check reports whether the token is next without consuming it or recording
// a failure.
func (t Token) Check(c *Cursor) bool {
	return t.match(c)
}

func (t Token) match(c *Cursor) bool {
	rest := c.Rest()
	if len(rest) < len(t.Text) {
		return false
	}

	head := rest[:len(t.Text)]
	if t.CaseInsensitive {
		if !strings.EqualFold(head, t.Text) {
			return false
		}
	} else if head != t.Text {
		return false
	}

	return !t.WordBoundary || len(rest) == len(t.Text) || !isWordChar(rest[len(t.Text)])
}

func isWordChar(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
