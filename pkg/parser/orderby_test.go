package parser_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/collation"
	. "github.com/pseudomuto/chexpr/pkg/parser"
	"github.com/stretchr/testify/require"
)

type failingCollators struct{}

func (failingCollators) Get(locale string) (*collation.Collator, error) {
	return nil, errors.Errorf("unsupported collation locale: %s", locale)
}

func TestOrderByElement(t *testing.T) {
	tests := []struct {
		input     string
		direction ast.Direction
		locale    string
		consumed  int
	}{
		{"x", ast.Ascending, "", 1},
		{"x ASC", ast.Ascending, "", 5},
		{"x ascending", ast.Ascending, "", 11},
		{"x DESC", ast.Descending, "", 6},
		{"x desc", ast.Descending, "", 6},
		{"x DESCENDING", ast.Descending, "", 12},
		{"name COLLATE 'en'", ast.Ascending, "en", 17},
		{"name DESC COLLATE 'sv'", ast.Descending, "sv", 22},
		{"x DESC ", ast.Descending, "", 6},
		{"x DESCRIPTION", ast.Ascending, "", 1},
		{"x, y", ast.Ascending, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, c, err := run(OrderByElement{}, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.consumed, c.Pos())

			el := node.(*ast.OrderByElement)
			require.Equal(t, tt.direction, el.Direction)
			require.Equal(t, ast.Span{End: tt.consumed}, el.Span())

			if tt.locale == "" {
				require.Nil(t, el.Collator)
				return
			}
			require.NotNil(t, el.Collator)
			require.Equal(t, tt.locale, el.Collator.Locale())
		})
	}
}

func TestOrderByElementExpression(t *testing.T) {
	node := mustParse(t, OrderByElement{}, "a + 1 AS b DESC")

	el := node.(*ast.OrderByElement)
	require.Equal(t, ast.Descending, el.Direction)
	require.Equal(t, "(a + 1) AS b", el.Expression.String())
}

func TestOrderByElementCollatorRegistry(t *testing.T) {
	reg := collation.NewRegistry()
	p := ExpressionList{Elem: OrderByElement{Collators: reg}}

	node := mustParse(t, p, "a COLLATE 'de', b COLLATE 'de', c DESC")
	require.Equal(t, 3, node.(*ast.ExpressionList).Len())
	require.Equal(t, 1, reg.Len())
}

func TestOrderByElementErrors(t *testing.T) {
	t.Run("missing locale", func(t *testing.T) {
		_, c, err := run(OrderByElement{}, "x COLLATE")
		require.True(t, IsMismatch(err))

		_, expected := c.Expected()
		require.Equal(t, "opening single quote", expected)
	})

	t.Run("bad locale", func(t *testing.T) {
		_, _, err := run(OrderByElement{}, "x DESC COLLATE 'no such locale'")

		var syn *SyntaxError
		require.ErrorAs(t, err, &syn)
		require.Equal(t, 15, syn.Pos)
	})

	t.Run("factory error", func(t *testing.T) {
		_, _, err := run(OrderByElement{Collators: failingCollators{}}, "x COLLATE 'en'")

		var syn *SyntaxError
		require.ErrorAs(t, err, &syn)
		require.Equal(t, "unsupported collation locale: en", syn.Msg)
	})

	t.Run("missing expression", func(t *testing.T) {
		_, _, err := run(OrderByElement{}, "DESC")
		require.NoError(t, err)

		_, _, err = run(OrderByElement{}, ", x")
		require.True(t, IsMismatch(err))
	})
}
