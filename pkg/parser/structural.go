package parser

import (
	"github.com/pseudomuto/chexpr/pkg/ast"
)

type (
	// Array parses [a, b, ...] into an "array" function call. An empty array
	// is allowed.
	Array struct{}

	// ParenthesisExpression parses (a) and (a, b, ...). A single expression is
	// returned as is; two or more become a "tuple" call. Empty parentheses are
	// a syntax error.
	ParenthesisExpression struct{}

	// Subquery parses (SELECT ...).
	Subquery struct{}
)

func (Array) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if err := Punct("[").Expect(c); err != nil {
		return nil, err
	}

	ws(c)
	list, err := parseList(c, nil)
	if err != nil {
		return nil, err
	}

	ws(c)
	if err := Punct("]").Expect(c); err != nil {
		return nil, err
	}

	return &ast.Function{Loc: c.Span(begin), Name: "array", Arguments: list}, nil
}

func (ParenthesisExpression) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if err := Punct("(").Expect(c); err != nil {
		return nil, err
	}

	ws(c)
	list, err := parseList(c, nil)
	if err != nil {
		return nil, err
	}

	ws(c)
	if err := Punct(")").Expect(c); err != nil {
		return nil, err
	}

	switch len(list.Elements) {
	case 0:
		return nil, &SyntaxError{Pos: begin, Msg: "expected not empty list of expressions in parenthesis"}
	case 1:
		node := list.Elements[0]
		ast.SetSpan(node, c.Span(begin))
		return node, nil
	default:
		return &ast.Function{Loc: c.Span(begin), Name: "tuple", Arguments: list}, nil
	}
}

func (Subquery) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if err := Punct("(").Expect(c); err != nil {
		return nil, err
	}

	ws(c)
	sel, err := Select{}.Parse(c)
	if err != nil {
		return nil, err
	}

	ws(c)
	if err := Punct(")").Expect(c); err != nil {
		return nil, err
	}

	return &ast.Subquery{Loc: c.Span(begin), Select: sel}, nil
}
