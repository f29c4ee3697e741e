package format_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/chexpr/pkg/ast"
	. "github.com/pseudomuto/chexpr/pkg/format"
	"github.com/pseudomuto/chexpr/pkg/parser"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.sql files found in testdata directory")

	for _, inputFile := range matches {
		name := strings.TrimSuffix(filepath.Base(inputFile), ".in.sql")

		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(inputFile)
			require.NoError(t, err)

			list, err := parser.New().ParseExpressionList(string(input))
			require.NoError(t, err)

			var sql bytes.Buffer
			require.NoError(t, Format(&sql, Defaults, list))
			golden.Assert(t, sql.String(), name+".sql")

			var explain bytes.Buffer
			require.NoError(t, NewDefault().Explain(&explain, list))
			golden.Assert(t, explain.String(), name+".explain")

			// The formatted SQL must read back as the same tree.
			reparsed, err := parser.New().ParseExpressionList(sql.String())
			require.NoError(t, err)
			require.True(t, list.Equal(reparsed), "reparsed %q", sql.String())
		})
	}
}

func TestFormatterKeywordCase(t *testing.T) {
	node, err := parser.New().ParseExpression("(a AND NULL) AS n")
	require.NoError(t, err)

	lower := New(FormatterOptions{UppercaseKeywords: false})
	require.Equal(t, "(a and null) as n", lower.Node(node))
	require.Equal(t, "(a AND NULL) AS n", NewDefault().Node(node))
	require.Equal(t, Defaults.IndentSize, lower.Options().IndentSize)
}

func TestExplain(t *testing.T) {
	orderBy, err := parser.New().ParseOrderBy("name DESC COLLATE 'en_US', id")
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		"ExpressionList (children 2)",
		" OrderByElement (children 2)",
		"  Identifier name",
		"  Literal \\'en_US\\'",
		" OrderByElement (children 1)",
		"  Identifier id",
		"",
	}, "\n"), Explain(orderBy))

	sub, err := parser.New().ParseExpression("x IN (SELECT id FROM t)")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"Function in (children 1)",
		" ExpressionList (children 2)",
		"  Identifier x",
		"  Subquery (children 1)",
		"   SelectWithUnionQuery (children 1)",
		"    ExpressionList (children 1)",
		"     SelectQuery SELECT id FROM t",
		"",
	}, "\n"), Explain(sub))

	empty, err := parser.New().ParseExpression("now()")
	require.NoError(t, err)
	require.Equal(t, "Function now (children 1)\n ExpressionList\n", Explain(empty))

	wide := New(FormatterOptions{IndentSize: 2})
	var buf bytes.Buffer
	require.NoError(t, wide.Explain(&buf, empty))
	require.Equal(t, "Function now (children 1)\n  ExpressionList\n", buf.String())
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		value ast.LiteralValue
		want  string
	}{
		{ast.NullValue(), "NULL"},
		{ast.UIntValue(18446744073709551615), "UInt64_18446744073709551615"},
		{ast.IntValue(-1), "Int64_-1"},
		{ast.FloatValue(1.5), "Float64_1.5"},
		{ast.FloatValue(100), "Float64_100"},
		{ast.FloatValue(1e21), "Float64_1e21"},
		{ast.FloatValue(1e-7), "Float64_1e-7"},
		{ast.FloatValue(math.Inf(1)), "Float64_inf"},
		{ast.FloatValue(math.NaN()), "Float64_nan"},
		{ast.StringValue("it's"), `\'it\\\'s\'`},
		{ast.StringValue("a\nb"), `\'a\\nb\'`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Literal(tt.value))
		})
	}
}
