package parser

import (
	"github.com/pseudomuto/chexpr/pkg/ast"
)

const elementExpected = "expression element: one of array, literal, function, identifier, asterisk, parenthesised expression, subquery"

type (
	// ExpressionElement parses a single operand: the first of
	// elementAlternatives that matches.
	ExpressionElement struct{}

	// Asterisk parses a bare *.
	Asterisk struct{}

	alternative struct {
		name   string
		parser Parser
	}
)

// elementAlternatives is the order in which ExpressionElement tries its
// alternatives. Order matters: (SELECT ...) must be tried as a subquery
// before it is read as a parenthesized expression, and name( must be tried
// as a function call before name is read as an identifier.
func elementAlternatives() []alternative {
	return []alternative{
		{name: "subquery", parser: Subquery{}},
		{name: "parenthesised expression", parser: ParenthesisExpression{}},
		{name: "array", parser: Array{}},
		{name: "literal", parser: Literal{}},
		{name: "function", parser: Function{}},
		{name: "identifier", parser: CompoundIdentifier{}},
		{name: "asterisk", parser: Asterisk{}},
	}
}

func (ExpressionElement) Parse(c *Cursor) (ast.Node, error) {
	if err := c.Enter(); err != nil {
		return nil, err
	}
	defer c.Leave()

	begin := c.Pos()
	for _, alt := range elementAlternatives() {
		c.Reset(begin)
		node, err := alt.parser.Parse(c)
		if err == nil || !IsMismatch(err) {
			return node, err
		}
	}

	c.Reset(begin)
	return nil, c.Fail(elementExpected)
}

func (Asterisk) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if err := Punct("*").Expect(c); err != nil {
		return nil, err
	}
	return &ast.Asterisk{Loc: c.Span(begin)}, nil
}
