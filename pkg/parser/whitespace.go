package parser

// WhiteSpaceOrComments skips spaces, tabs, newlines, -- line comments and
// /* block */ comments. An unterminated block comment is not skipped.
type WhiteSpaceOrComments struct{}

// Ignore skips everything it can and reports whether anything was skipped.
func (WhiteSpaceOrComments) Ignore(c *Cursor) bool {
	begin := c.Pos()
	for skipSpace(c) || skipComment(c) {
	}
	return c.Pos() > begin
}

func skipSpace(c *Cursor) bool {
	begin := c.Pos()
	for !c.EOF() {
		switch c.Peek() {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			c.Advance(1)
		default:
			return c.Pos() > begin
		}
	}
	return c.Pos() > begin
}

func skipComment(c *Cursor) bool {
	switch {
	case c.HasPrefix("--"):
		rest := c.Rest()
		n := len(rest)
		for i := 2; i < len(rest); i++ {
			if rest[i] == '\n' {
				n = i + 1
				break
			}
		}
		c.Advance(n)
		return true
	case c.HasPrefix("/*"):
		rest := c.Rest()
		for i := 2; i+1 < len(rest); i++ {
			if rest[i] == '*' && rest[i+1] == '/' {
				c.Advance(i + 2)
				return true
			}
		}
	}
	return false
}

// ws is shorthand used by every rule.
func ws(c *Cursor) {
	WhiteSpaceOrComments{}.Ignore(c)
}
