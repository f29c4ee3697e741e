package clickhouse

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// selectQueryIndent is the depth of SelectQuery's children in the output of
// EXPLAIN AST SELECT ...:
//
//	SelectWithUnionQuery (children 1)
//	 ExpressionList (children 1)
//	  SelectQuery (children 1)
//	   ExpressionList (children 2)
const selectQueryIndent = 3

// ExplainAST returns the server's EXPLAIN AST for the SELECT list exprs,
// starting at the ExpressionList that holds them.
func (c *Client) ExplainAST(ctx context.Context, exprs string) (string, error) {
	lines, err := c.explain(ctx, "EXPLAIN AST SELECT "+exprs)
	if err != nil {
		return "", err
	}
	return SelectQueryChild(lines, 0)
}

// ExplainOrderBy returns the server's EXPLAIN AST for an ORDER BY body,
// starting at the ExpressionList of OrderByElements.
func (c *Client) ExplainOrderBy(ctx context.Context, orderBy string) (string, error) {
	lines, err := c.explain(ctx, "EXPLAIN AST SELECT 1 ORDER BY "+orderBy)
	if err != nil {
		return "", err
	}
	return SelectQueryChild(lines, 1)
}

func (c *Client) explain(ctx context.Context, query string) ([]string, error) {
	rows, err := c.conn.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run EXPLAIN AST")
	}
	defer func() { _ = rows.Close() }()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, errors.Wrap(err, "failed to scan EXPLAIN AST row")
		}
		lines = append(lines, line)
	}

	return lines, errors.Wrap(rows.Err(), "failed to read EXPLAIN AST")
}

// SelectQueryChild extracts the n-th child of SelectQuery from EXPLAIN AST
// output and shifts it to the left margin. For a plain SELECT the first child
// is the select list and, with ORDER BY, the second is the ORDER BY list.
func SelectQueryChild(lines []string, n int) (string, error) {
	start := -1
	for i, line := range lines {
		if indentOf(line) == selectQueryIndent-1 && strings.HasPrefix(strings.TrimSpace(line), "SelectQuery") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", errors.New("unexpected EXPLAIN AST output: no SelectQuery")
	}

	var (
		b     strings.Builder
		child = -1
	)
	for _, line := range lines[start:] {
		depth := indentOf(line)
		if depth < selectQueryIndent {
			break
		}
		if depth == selectQueryIndent {
			child++
		}
		if child == n {
			b.WriteString(line[selectQueryIndent:])
			b.WriteByte('\n')
		}
		if child > n {
			break
		}
	}

	if b.Len() == 0 {
		return "", errors.Errorf("unexpected EXPLAIN AST output: SelectQuery has no child %d", n)
	}
	return b.String(), nil
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
