package parser_test

import (
	"math"
	"testing"

	"github.com/pseudomuto/chexpr/pkg/ast"
	. "github.com/pseudomuto/chexpr/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		input    string
		want     ast.LiteralValue
		consumed int
	}{
		{"0", ast.UIntValue(0), 1},
		{"42", ast.UIntValue(42), 2},
		{"+7", ast.UIntValue(7), 2},
		{"-0", ast.UIntValue(0), 2},
		{"-5", ast.IntValue(-5), 2},
		{"18446744073709551615", ast.UIntValue(math.MaxUint64), 20},
		{"18446744073709551616", ast.FloatValue(18446744073709551616), 20},
		{"-9223372036854775808", ast.IntValue(math.MinInt64), 20},
		{"-9223372036854775809", ast.FloatValue(-9223372036854775809), 20},
		{"1.5", ast.FloatValue(1.5), 3},
		{"1.", ast.FloatValue(1), 2},
		{".5", ast.FloatValue(0.5), 2},
		{"1e3", ast.FloatValue(1000), 3},
		{"2.5E-1", ast.FloatValue(0.25), 6},
		{"1e", ast.UIntValue(1), 1},
		{"0x1F", ast.UIntValue(31), 4},
		{"0xffffffffffffffff", ast.UIntValue(math.MaxUint64), 18},
		{"-0x10", ast.IntValue(-16), 5},
		{"inf", ast.FloatValue(math.Inf(1)), 3},
		{"-Infinity", ast.FloatValue(math.Inf(-1)), 9},
		{"NaN", ast.FloatValue(math.NaN()), 3},
		{"-nan", ast.FloatValue(math.Copysign(math.NaN(), -1)), 4},
		{"12abc", ast.UIntValue(12), 2},
		{"010", ast.UIntValue(8), 3},
		{"-010", ast.IntValue(-8), 4},
		{"09", ast.FloatValue(9), 2},
		{"00", ast.UIntValue(0), 2},
		{"0.5", ast.FloatValue(0.5), 3},
		{"1e-300", ast.FloatValue(1e-300), 6},
		{"0e-400", ast.FloatValue(0), 6},
		{"3.14) + 1", ast.FloatValue(3.14), 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, c, err := run(Number{}, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.consumed, c.Pos())

			l := node.(*ast.Literal)
			require.True(t, tt.want.Equal(l.Value), "got %s (%s)", l.Value, l.Value.Type())
			require.Equal(t, ast.Span{End: tt.consumed}, l.Span())
		})
	}
}

func TestNumberMismatch(t *testing.T) {
	for _, input := range []string{"", "x", ".", "-", "info", "nanny", "'1'", "1e-400", "1e-320", "-2.5e-330"} {
		t.Run(input, func(t *testing.T) {
			_, c, err := run(Number{}, input)
			require.True(t, IsMismatch(err))

			pos, expected := c.Expected()
			require.Equal(t, 0, pos)
			require.Equal(t, "number", expected)
		})
	}
}

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`''`, ""},
		{`'hello'`, "hello"},
		{`'it\'s'`, "it's"},
		{`'a\\b'`, `a\b`},
		{`'tab\there'`, "tab\there"},
		{`'\n\r\0'`, "\n\r\x00"},
		{`'\a\b\f\v'`, "\a\b\f\v"},
		{`'\q'`, "q"},
		{`'multi
line'`, "multi\nline"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustParse(t, StringLiteral{}, tt.input)
			require.Equal(t, tt.want, node.(*ast.Literal).Value.StringVal())
		})
	}
}

func TestStringLiteralErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		pos      int
	}{
		{"abc", "opening single quote", 0},
		{"'abc", "closing single quote", 4},
		{`'abc\`, "escape sequence", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, c, err := run(StringLiteral{}, tt.input)
			require.True(t, IsMismatch(err))

			pos, expected := c.Expected()
			require.Equal(t, tt.pos, pos)
			require.Equal(t, tt.expected, expected)
		})
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  ast.LiteralValue
	}{
		{"NULL", ast.NullValue()},
		{"null", ast.NullValue()},
		{"1", ast.UIntValue(1)},
		{"'x'", ast.StringValue("x")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustParse(t, Literal{}, tt.input)
			require.True(t, tt.want.Equal(node.(*ast.Literal).Value))
		})
	}

	t.Run("null prefix is not null", func(t *testing.T) {
		_, c, err := run(Literal{}, "nullable")
		require.True(t, IsMismatch(err))
		require.Equal(t, 0, c.Pos())
	})
}
