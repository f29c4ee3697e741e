package parser

import (
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/collation"
)

// CollatorFactory hands out collators by locale name. *collation.Registry
// implements it.
type CollatorFactory interface {
	Get(locale string) (*collation.Collator, error)
}

// OrderByElement parses expr [ASC|ASCENDING|DESC|DESCENDING] [COLLATE 'locale'].
type OrderByElement struct {
	// Collators defaults to collation.Default.
	Collators CollatorFactory
}

func (p OrderByElement) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()

	expr, err := WithOptionalAlias{Elem: Expression{}}.Parse(c)
	if err != nil {
		return nil, err
	}

	el := &ast.OrderByElement{Expression: expr, Direction: ast.Ascending}
	end := c.Pos()

	ws(c)
	if kw, ok := acceptKeyword(c, "DESCENDING", "DESC", "ASCENDING", "ASC"); ok {
		if kw == "DESCENDING" || kw == "DESC" {
			el.Direction = ast.Descending
		}
		end = c.Pos()
	}

	c.Reset(end)
	ws(c)
	if _, ok := acceptKeyword(c, "COLLATE"); ok {
		ws(c)
		localeBegin := c.Pos()
		locale, err := StringLiteral{}.Parse(c)
		if err != nil {
			return nil, err
		}

		el.Collator, err = p.collators().Get(locale.(*ast.Literal).Value.StringVal())
		if err != nil {
			return nil, &SyntaxError{Pos: localeBegin, Msg: err.Error()}
		}
		end = c.Pos()
	}

	c.Reset(end)
	el.Loc = c.Span(begin)
	return el, nil
}

func (p OrderByElement) collators() CollatorFactory {
	if p.Collators == nil {
		return collation.Default
	}
	return p.Collators
}

// acceptKeyword consumes the first of keywords found at the cursor. It does
// not record a failure; optional modifiers are not worth reporting.
func acceptKeyword(c *Cursor, keywords ...string) (string, bool) {
	for _, kw := range keywords {
		if tok := Keyword(kw); tok.Check(c) {
			c.Advance(len(kw))
			return kw, true
		}
	}
	return "", false
}
