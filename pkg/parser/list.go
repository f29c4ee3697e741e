package parser

import (
	"github.com/pseudomuto/chexpr/pkg/ast"
)

// ExpressionList parses zero or more comma-separated Elem. When the first
// element does not match the result is an empty list and nothing is
// consumed; a comma must be followed by an element.
type ExpressionList struct {
	// Elem defaults to an aliasable Expression.
	Elem Parser
}

func (p ExpressionList) Parse(c *Cursor) (ast.Node, error) {
	return parseList(c, p.Elem)
}

func parseList(c *Cursor, elem Parser) (*ast.ExpressionList, error) {
	if elem == nil {
		elem = WithOptionalAlias{Elem: Expression{}}
	}

	begin := c.Pos()
	list := &ast.ExpressionList{}

	node, err := elem.Parse(c)
	if err != nil {
		if !IsMismatch(err) {
			return nil, err
		}
		c.Reset(begin)
		list.Loc = c.Span(begin)
		return list, nil
	}
	list.Elements = append(list.Elements, node)

	for {
		end := c.Pos()
		ws(c)
		if !Punct(",").Check(c) {
			c.Reset(end)
			break
		}
		c.Advance(1)
		ws(c)

		node, err := elem.Parse(c)
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, node)
	}

	list.Loc = c.Span(begin)
	return list, nil
}
