package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/query"
)

func (f *Formatter) explain(n ast.Node) string {
	var b strings.Builder
	f.explainNode(&b, n, 0)
	return b.String()
}

func (f *Formatter) line(b *strings.Builder, level int, format string, args ...any) {
	b.WriteString(f.indent(level))
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

func (f *Formatter) explainNode(b *strings.Builder, n ast.Node, level int) {
	switch n := n.(type) {
	case *ast.Identifier:
		f.line(b, level, "Identifier %s%s", n.Name, aliasSuffix(n.Alias))
	case *ast.Literal:
		f.line(b, level, "Literal %s%s", Literal(n.Value), aliasSuffix(n.Alias))
	case *ast.Function:
		lists := []*ast.ExpressionList{n.Arguments}
		if n.Parameters != nil {
			lists = append(lists, n.Parameters)
		}
		f.line(b, level, "Function %s%s (children %d)", n.Name, aliasSuffix(n.Alias), len(lists))
		for _, l := range lists {
			f.explainList(b, l, level+1)
		}
	case *ast.Asterisk:
		f.line(b, level, "Asterisk")
	case *ast.Subquery:
		f.line(b, level, "Subquery (children 1)")
		f.explainNode(b, n.Select, level+1)
	case *ast.OrderByElement:
		children := 1
		if n.Collator != nil {
			children++
		}
		f.line(b, level, "OrderByElement (children %d)", children)
		f.explainNode(b, n.Expression, level+1)
		if n.Collator != nil {
			f.line(b, level+1, "Literal %s", Literal(ast.StringValue(n.Collator.Locale())))
		}
	case *ast.ExpressionList:
		f.explainList(b, n, level)
	case *query.Statement:
		// The inside of a SELECT is not broken down further.
		f.line(b, level, "SelectWithUnionQuery (children 1)")
		f.line(b, level+1, "ExpressionList (children %d)", len(n.Query.Selects))
		for _, s := range n.Query.Selects {
			f.line(b, level+2, "SelectQuery %s", s.String())
		}
	}
}

func (f *Formatter) explainList(b *strings.Builder, l *ast.ExpressionList, level int) {
	if l.Len() == 0 {
		f.line(b, level, "ExpressionList")
		return
	}

	f.line(b, level, "ExpressionList (children %d)", l.Len())
	for _, el := range l.Elements {
		f.explainNode(b, el, level+1)
	}
}

func aliasSuffix(alias string) string {
	if alias == "" {
		return ""
	}
	alias = strings.ReplaceAll(alias, `\`, `\\`)
	alias = strings.ReplaceAll(alias, `'`, `\'`)
	return " (alias " + alias + ")"
}

// Literal renders v the way EXPLAIN AST prints constants: UInt64_1,
// Int64_-1, Float64_0.5, \'text\' and NULL.
func Literal(v ast.LiteralValue) string {
	switch v.Type() {
	case ast.UInt64Type:
		return "UInt64_" + strconv.FormatUint(v.UInt64(), 10)
	case ast.Int64Type:
		return "Int64_" + strconv.FormatInt(v.Int64(), 10)
	case ast.Float64Type:
		return "Float64_" + Float(v.Float64())
	case ast.StringType:
		return `\'` + escapeExplainString(v.StringVal()) + `\'`
	default:
		return "NULL"
	}
}

// Float formats f like ClickHouse: lowercase inf and nan, plain decimals for
// ordinary magnitudes and a compact exponent otherwise.
func Float(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	if abs := math.Abs(f); (abs > 0 && abs < 1e-6) || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e+", "e", 1)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escapeExplainString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\\\`)
		case '\'':
			b.WriteString(`\\\'`)
		case '\n':
			b.WriteString(`\\n`)
		case '\t':
			b.WriteString(`\\t`)
		case '\r':
			b.WriteString(`\\r`)
		case 0:
			b.WriteString(`\\0`)
		case '\b':
			b.WriteString(`\\b`)
		case '\f':
			b.WriteString(`\\f`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
