package parser_test

import (
	"testing"

	"github.com/pseudomuto/chexpr/pkg/ast"
	. "github.com/pseudomuto/chexpr/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b % c", "((a / b) % c)"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a-1", "(a - 1)"},
		{"1 + -2", "(1 + -2)"},
		{"-x", "negate(x)"},
		{"- -1", "negate(-1)"},
		{"-a * b", "(negate(a) * b)"},
		{"-x[1]", "negate(arrayElement(x, 1))"},
		{"a OR b AND c", "(a OR (b AND c))"},
		{"a AND b OR c", "((a AND b) OR c)"},
		{"NOT a AND b", "((NOT a) AND b)"},
		{"NOT NOT a", "(NOT (NOT a))"},
		{"NOT a = 1", "(NOT (a = 1))"},
		{"NOT", "`NOT`"},
		{"a = 1 AND b != 2", "((a = 1) AND (b != 2))"},
		{"a == 1", "(a = 1)"},
		{"a <> 1", "(a != 1)"},
		{"a <= 1", "(a <= 1)"},
		{"a >= 1", "(a >= 1)"},
		{"a < 1", "(a < 1)"},
		{"a > 1", "(a > 1)"},
		{"a + 1 > b * 2", "((a + 1) > (b * 2))"},
		{"s LIKE '%x'", "(s LIKE '%x')"},
		{"s not  like '%x'", "(s NOT LIKE '%x')"},
		{"a IN (1, 2)", "(a IN (1, 2))"},
		{"a NOT IN (1, 2)", "(a NOT IN (1, 2))"},
		{"a GLOBAL IN t", "(a GLOBAL IN t)"},
		{"a GLOBAL NOT IN (SELECT 1)", "(a GLOBAL NOT IN (SELECT 1))"},
		{"arr[1][2]", "arrayElement(arrayElement(arr, 1), 2)"},
		{"arr [i + 1]", "arrayElement(arr, (i + 1))"},
		{"t.1.2", "tupleElement(tupleElement(t, 1), 2)"},
		{"f(x).1", "tupleElement(f(x), 1)"},
		{"andy OR orson", "(andy OR orson)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustParse(t, Expression{}, tt.input)
			require.Equal(t, tt.want, node.String())
		})
	}
}

func TestExpressionShape(t *testing.T) {
	node := mustParse(t, Expression{}, "a + 1")
	require.True(t, fn("plus", ident("a"), lit(ast.UIntValue(1))).Equal(node))

	node = mustParse(t, Expression{}, "t.1")
	require.True(t, fn("tupleElement", ident("t"), lit(ast.UIntValue(1))).Equal(node))

	index := node.(*ast.Function).Arguments.Elements[1]
	require.Equal(t, ast.Span{Start: 2, End: 3}, index.Span())
}

func TestExpressionStopsBeforeUnknownText(t *testing.T) {
	tests := []struct {
		input    string
		consumed int
	}{
		{"a b", 1},
		{"a NOT", 1},
		{"a GLOBAL x", 1},
		{"a AS b", 1},
		{"x DESC", 1},
		{"1 , 2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, c, err := run(Expression{}, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.consumed, c.Pos())
		})
	}
}

func TestExpressionMissingOperand(t *testing.T) {
	for _, input := range []string{"a +", "a AND", "a IN", "arr[1", "arr[]"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := run(Expression{}, input)
			require.True(t, IsMismatch(err))
		})
	}
}
