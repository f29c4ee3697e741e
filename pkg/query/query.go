// Package query parses ClickHouse SELECT statements.
//
// The grammar is intentionally shallow: it recognizes the shape of a SELECT
// (WITH, columns, FROM with joins, WHERE, GROUP BY, HAVING, ORDER BY, LIMIT,
// SETTINGS and UNION ALL) so the expression parser can accept subqueries.
// The result is an opaque *Statement that implements ast.Node.
//
// Example:
//
//	stmt, err := query.ParseString("SELECT id, count() FROM events GROUP BY id")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(stmt) // SELECT id, count() FROM events GROUP BY id
package query

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/compare"
)

var (
	selectLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
		{Name: "BacktickIdent", Pattern: "`([^`\\\\]|\\\\.)*`"},
		{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Operator", Pattern: `==|!=|<>|<=|>=`},
		{Name: "Punct", Pattern: `[(),.;=+\-*/%<>\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	selectParser = participle.MustBuild[Union](
		participle.Lexer(selectLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(4),
	)
)

// Statement is a parsed SELECT. It is the node the expression parser stores
// inside an ast.Subquery.
type Statement struct {
	Loc   ast.Span
	Query *Union
}

// ParseString parses a complete SELECT statement. The span of the result
// covers all of sql.
func ParseString(sql string) (*Statement, error) {
	u, err := selectParser.ParseString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SELECT")
	}

	return &Statement{Loc: ast.Span{End: len(sql)}, Query: u}, nil
}

func (s *Statement) Kind() ast.Kind       { return ast.KindSelect }
func (s *Statement) Span() ast.Span       { return s.Loc }
func (s *Statement) Children() []ast.Node { return nil }
func (s *Statement) String() string       { return s.Query.String() }

// Equal compares the canonical rendering of both statements, which is
// independent of spacing, comments and keyword case.
func (s *Statement) Equal(other ast.Node) bool {
	o, ok := other.(*Statement)
	if !ok {
		return false
	}
	if eq, more := compare.NilCheck(s, o); !more {
		return eq
	}
	return compare.PointersWithEqual(s.Query, o.Query, func(a, b *Union) bool {
		return a.String() == b.String()
	})
}

func join[T interface{ String() string }](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, sep)
}
