package parser_test

import (
	"testing"

	"github.com/pseudomuto/chexpr/pkg/ast"
	. "github.com/pseudomuto/chexpr/pkg/parser"
	"github.com/stretchr/testify/require"
)

// run applies p to input and returns the node and the cursor it used.
func run(p Parser, input string) (ast.Node, *Cursor, error) {
	c := NewCursor(input)
	node, err := p.Parse(c)
	return node, c, err
}

// mustParse applies p to input and requires that all of it was consumed.
func mustParse(t *testing.T, p Parser, input string) ast.Node {
	t.Helper()

	node, c, err := run(p, input)
	require.NoError(t, err, input)
	require.True(t, c.EOF(), "unconsumed input %q", c.Rest())
	require.Equal(t, input, node.Span().Text(input))
	return node
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func lit(v ast.LiteralValue) *ast.Literal {
	return &ast.Literal{Value: v}
}

func fn(name string, args ...ast.Node) *ast.Function {
	return &ast.Function{Name: name, Arguments: &ast.ExpressionList{Elements: args}}
}

func list(elements ...ast.Node) *ast.ExpressionList {
	return &ast.ExpressionList{Elements: elements}
}
