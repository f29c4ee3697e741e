package query_test

import (
	"testing"

	"github.com/pseudomuto/chexpr/pkg/ast"
	. "github.com/pseudomuto/chexpr/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"literal", "SELECT 1", "SELECT 1"},
		{"keyword case", "select distinct a from t", "SELECT DISTINCT a FROM t"},
		{"aliases", "SELECT a AS x, count() AS n FROM db.events AS e", "SELECT a AS x, count() AS n FROM db.events AS e"},
		{"comments", "SELECT /* cols */ a -- trailing\nFROM t", "SELECT a FROM t"},
		{"where", "SELECT a FROM t WHERE a > 1 AND NOT b = 'x' OR c IN (1, 2)", "SELECT a FROM t WHERE a > 1 AND NOT b = 'x' OR c IN (1, 2)"},
		{"not in", "SELECT a FROM t WHERE a not in (SELECT b FROM u)", "SELECT a FROM t WHERE a NOT IN (SELECT b FROM u)"},
		{"group and having", "SELECT a, sum(b) FROM t GROUP BY a HAVING sum(b) > 10", "SELECT a, sum(b) FROM t GROUP BY a HAVING sum(b) > 10"},
		{"order and limit", "SELECT a FROM t ORDER BY a desc, b COLLATE 'en' LIMIT 10 OFFSET 5", "SELECT a FROM t ORDER BY a DESC, b COLLATE 'en' LIMIT 10 OFFSET 5"},
		{"parametric", "SELECT quantile(0.9)(x) FROM t", "SELECT quantile(0.9)(x) FROM t"},
		{"arithmetic", "SELECT -a * (b + 1) % 2 FROM t", "SELECT -a * (b + 1) % 2 FROM t"},
		{"arrays", "SELECT [1, 2], [] FROM t", "SELECT [1, 2], [] FROM t"},
		{"star", "SELECT * FROM t FINAL", "SELECT * FROM t FINAL"},
		{"table function", "SELECT * FROM numbers(10)", "SELECT * FROM numbers(10)"},
		{"from subquery", "SELECT x FROM (SELECT 1 AS x) AS s", "SELECT x FROM (SELECT 1 AS x) AS s"},
		{"join on", "SELECT a FROM t LEFT JOIN u ON t.id = u.id", "SELECT a FROM t LEFT JOIN u ON t.id = u.id"},
		{"join using", "SELECT a FROM t GLOBAL inner JOIN u USING (id, day)", "SELECT a FROM t GLOBAL INNER JOIN u USING (id, day)"},
		{"with", "WITH 10 AS n SELECT n * 2", "WITH 10 AS n SELECT n * 2"},
		{"union", "SELECT 1 UNION ALL SELECT 2 UNION ALL SELECT 3", "SELECT 1 UNION ALL SELECT 2 UNION ALL SELECT 3"},
		{"settings", "SELECT a FROM t SETTINGS max_threads = 8", "SELECT a FROM t SETTINGS max_threads = 8"},
		{"null and strings", "SELECT NULL, 'it\\'s', `odd col` FROM t", "SELECT NULL, 'it\\'s', `odd col` FROM t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseString(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, stmt.String())
			require.Equal(t, ast.KindSelect, stmt.Kind())
			require.Equal(t, ast.Span{End: len(tt.input)}, stmt.Span())
			require.Empty(t, stmt.Children())

			again, err := ParseString(stmt.String())
			require.NoError(t, err)
			require.True(t, stmt.Equal(again))
		})
	}
}

func TestParseStringErrors(t *testing.T) {
	tests := []string{
		"",
		"SELECT",
		"SELECT 1 +",
		"SELECT a FROM",
		"UPDATE t SET a = 1",
		"SELECT 1)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			stmt, err := ParseString(input)
			require.Error(t, err)
			require.Nil(t, stmt)
			require.Contains(t, err.Error(), "failed to parse SELECT")
		})
	}
}

func TestStatementEqual(t *testing.T) {
	a, err := ParseString("select a from t")
	require.NoError(t, err)

	b, err := ParseString("SELECT  a\n  FROM t")
	require.NoError(t, err)

	c, err := ParseString("SELECT b FROM t")
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(&ast.Asterisk{}))

	var nilStmt *Statement
	require.False(t, a.Equal(nilStmt))
}
