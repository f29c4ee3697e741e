package ast

import (
	"strings"
)

// Style controls how nodes are rendered back to SQL.
type Style struct {
	// LowercaseKeywords renders AS, NULL, DESC, AND, ... in lower case.
	LowercaseKeywords bool
}

// infix maps operator functions to the operator text used when rendering a
// two-argument call.
var infix = map[string]string{
	"or":              "OR",
	"and":             "AND",
	"equals":          "=",
	"notEquals":       "!=",
	"less":            "<",
	"greater":         ">",
	"lessOrEquals":    "<=",
	"greaterOrEquals": ">=",
	"like":            "LIKE",
	"notLike":         "NOT LIKE",
	"in":              "IN",
	"notIn":           "NOT IN",
	"globalIn":        "GLOBAL IN",
	"globalNotIn":     "GLOBAL NOT IN",
	"plus":            "+",
	"minus":           "-",
	"multiply":        "*",
	"divide":          "/",
	"modulo":          "%",
}

// reserved names would be read back as something other than an identifier
// if written bare.
var reserved = map[string]bool{
	"NULL": true, "INF": true, "INFINITY": true, "NAN": true,
	"NOT": true, "AND": true, "OR": true, "AS": true, "LIKE": true, "IN": true,
	"GLOBAL": true, "ASC": true, "DESC": true, "ASCENDING": true, "DESCENDING": true,
	"COLLATE": true,
}

func render(n Node) string {
	return Style{}.Render(n)
}

// Render serializes n as SQL. Parsing the output yields a tree Equal to n.
func (s Style) Render(n Node) string {
	var b strings.Builder
	s.write(&b, n)
	return b.String()
}

func (s Style) keyword(kw string) string {
	if s.LowercaseKeywords {
		return strings.ToLower(kw)
	}
	return kw
}

func (s Style) write(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Identifier:
		b.WriteString(QuoteIdentifier(n.Name))
		s.writeAlias(b, n.Alias)
	case *Literal:
		if n.Value.IsNull() {
			b.WriteString(s.keyword("NULL"))
		} else {
			b.WriteString(n.Value.String())
		}
		s.writeAlias(b, n.Alias)
	case *Function:
		s.writeFunction(b, n)
		s.writeAlias(b, n.Alias)
	case *Asterisk:
		b.WriteByte('*')
	case *Subquery:
		b.WriteByte('(')
		if n.Select != nil {
			b.WriteString(n.Select.String())
		}
		b.WriteByte(')')
	case *OrderByElement:
		s.write(b, n.Expression)
		if n.Direction == Descending {
			b.WriteString(" " + s.keyword("DESC"))
		}
		if n.Collator != nil {
			b.WriteString(" " + s.keyword("COLLATE") + " " + QuoteString(n.Collator.Locale()))
		}
	case *ExpressionList:
		s.writeList(b, n)
	case nil:
	default:
		b.WriteString(n.String())
	}
}

func (s Style) writeFunction(b *strings.Builder, f *Function) {
	args := f.Arguments.Len()

	if f.Parameters == nil {
		switch {
		case f.Name == "array":
			b.WriteByte('[')
			s.writeList(b, f.Arguments)
			b.WriteByte(']')
			return
		case f.Name == "tuple" && args >= 2:
			b.WriteByte('(')
			s.writeList(b, f.Arguments)
			b.WriteByte(')')
			return
		case f.Name == "not" && args == 1:
			b.WriteString("(" + s.keyword("NOT") + " ")
			s.writeOperand(b, f.Arguments.Elements[0])
			b.WriteByte(')')
			return
		}

		if op, ok := infix[f.Name]; ok && args == 2 {
			b.WriteByte('(')
			s.writeOperand(b, f.Arguments.Elements[0])
			b.WriteString(" " + s.keyword(op) + " ")
			s.writeOperand(b, f.Arguments.Elements[1])
			b.WriteByte(')')
			return
		}
	}

	b.WriteString(quoteName(f.Name, false))
	if f.Parameters != nil {
		b.WriteByte('(')
		s.writeList(b, f.Parameters)
		b.WriteByte(')')
	}
	b.WriteByte('(')
	s.writeList(b, f.Arguments)
	b.WriteByte(')')
}

// writeOperand parenthesizes aliased operands, which would otherwise end the
// surrounding expression early.
func (s Style) writeOperand(b *strings.Builder, n Node) {
	if AliasOf(n) != "" {
		b.WriteByte('(')
		s.write(b, n)
		b.WriteByte(')')
		return
	}
	s.write(b, n)
}

func (s Style) writeList(b *strings.Builder, l *ExpressionList) {
	if l == nil {
		return
	}
	for i, el := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		s.write(b, el)
	}
}

func (s Style) writeAlias(b *strings.Builder, alias string) {
	if alias == "" {
		return
	}
	b.WriteString(" " + s.keyword("AS") + " " + quoteName(alias, false))
}

// QuoteIdentifier returns name unchanged when it reads back as the same
// dotted identifier, otherwise back-quoted.
func QuoteIdentifier(name string) string {
	return quoteName(name, true)
}

func quoteName(name string, dotted bool) string {
	head, _, _ := strings.Cut(name, ".")
	if isPlainName(name, dotted) && !reserved[strings.ToUpper(head)] {
		return name
	}

	var b strings.Builder
	b.WriteByte('`')
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '`', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('`')
	return b.String()
}

func isPlainName(name string, dotted bool) bool {
	if name == "" {
		return false
	}

	start := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.' && dotted && !start && i+1 < len(name):
			start = true
			continue
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case c >= '0' && c <= '9' && !start:
		default:
			return false
		}
		start = false
	}
	return true
}
