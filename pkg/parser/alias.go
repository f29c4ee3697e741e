package parser

import (
	"github.com/pseudomuto/chexpr/pkg/ast"
)

type (
	// Alias parses AS name and returns the name as an Identifier.
	Alias struct{}

	// WithOptionalAlias parses Elem followed by an optional alias. A missing
	// alias is not an error. An alias on a node that cannot carry one (a
	// subquery or *) or that already has one, as in (x AS y) AS z, is a
	// mismatch.
	WithOptionalAlias struct {
		// Elem defaults to ExpressionElement.
		Elem Parser
	}
)

func (Alias) Parse(c *Cursor) (ast.Node, error) {
	if err := Keyword("AS").Expect(c); err != nil {
		return nil, err
	}

	ws(c)
	return Identifier{}.Parse(c)
}

func (p WithOptionalAlias) Parse(c *Cursor) (ast.Node, error) {
	elem := p.Elem
	if elem == nil {
		elem = ExpressionElement{}
	}

	node, err := elem.Parse(c)
	if err != nil {
		return nil, err
	}

	end := c.Pos()
	ws(c)
	if !Keyword("AS").Check(c) {
		c.Reset(end)
		return node, nil
	}

	aliasBegin := c.Pos()
	alias, err := Alias{}.Parse(c)
	if err != nil {
		if IsMismatch(err) {
			c.Reset(end)
			return node, nil
		}
		return nil, err
	}

	if ast.AliasOf(node) != "" || !ast.SetAlias(node, alias.(*ast.Identifier).Name) {
		c.Reset(aliasBegin)
		return nil, c.Fail("alias cannot be here")
	}

	ast.Extend(node, c.Pos())
	return node, nil
}
