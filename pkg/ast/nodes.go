package ast

import (
	"github.com/pseudomuto/chexpr/pkg/collation"
	"github.com/pseudomuto/chexpr/pkg/compare"
)

// Direction is the sort direction of an ORDER BY element, +1 or -1.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

type (
	// Identifier is a possibly dotted column, table or alias name. Dotted
	// names are kept flat: a.b.c has Name "a.b.c".
	Identifier struct {
		Loc   Span
		Name  string
		Alias string
	}

	// Literal is a constant.
	Literal struct {
		Loc   Span
		Value LiteralValue
		Alias string
	}

	// Function is a call, an operator application, an array constructor
	// (Name "array") or a tuple constructor (Name "tuple").
	//
	// Parameters is non-nil only for the parametric form f(params)(args).
	Function struct {
		Loc        Span
		Name       string
		Arguments  *ExpressionList
		Parameters *ExpressionList
		Alias      string
	}

	// Asterisk is the bare * column matcher.
	Asterisk struct {
		Loc Span
	}

	// Subquery is a parenthesized SELECT. The shape of Select is owned by
	// the select grammar.
	Subquery struct {
		Loc    Span
		Select Node
	}

	// OrderByElement is one item of an ORDER BY clause.
	OrderByElement struct {
		Loc        Span
		Expression Node
		Direction  Direction
		Collator   *collation.Collator
	}

	// ExpressionList is a comma-separated list of expressions.
	ExpressionList struct {
		Loc      Span
		Elements []Node
	}
)

func (n *Identifier) Kind() Kind     { return KindIdentifier }
func (n *Literal) Kind() Kind        { return KindLiteral }
func (n *Function) Kind() Kind       { return KindFunction }
func (n *Asterisk) Kind() Kind       { return KindAsterisk }
func (n *Subquery) Kind() Kind       { return KindSubquery }
func (n *OrderByElement) Kind() Kind { return KindOrderByElement }
func (n *ExpressionList) Kind() Kind { return KindExpressionList }

func (n *Identifier) Span() Span     { return n.Loc }
func (n *Literal) Span() Span        { return n.Loc }
func (n *Function) Span() Span       { return n.Loc }
func (n *Asterisk) Span() Span       { return n.Loc }
func (n *Subquery) Span() Span       { return n.Loc }
func (n *OrderByElement) Span() Span { return n.Loc }
func (n *ExpressionList) Span() Span { return n.Loc }

func (n *Identifier) setSpan(s Span)     { n.Loc = s }
func (n *Literal) setSpan(s Span)        { n.Loc = s }
func (n *Function) setSpan(s Span)       { n.Loc = s }
func (n *Asterisk) setSpan(s Span)       { n.Loc = s }
func (n *Subquery) setSpan(s Span)       { n.Loc = s }
func (n *OrderByElement) setSpan(s Span) { n.Loc = s }
func (n *ExpressionList) setSpan(s Span) { n.Loc = s }

func (n *Identifier) Children() []Node { return nil }
func (n *Literal) Children() []Node    { return nil }
func (n *Asterisk) Children() []Node   { return nil }

// Children returns the arguments followed by the parameters.
func (n *Function) Children() []Node {
	var children []Node
	if n.Arguments != nil {
		children = append(children, n.Arguments.Elements...)
	}
	if n.Parameters != nil {
		children = append(children, n.Parameters.Elements...)
	}
	return children
}

func (n *Subquery) Children() []Node {
	if n.Select == nil {
		return nil
	}
	return []Node{n.Select}
}

func (n *OrderByElement) Children() []Node {
	return []Node{n.Expression}
}

func (n *ExpressionList) Children() []Node {
	return n.Elements
}

// Len returns the number of elements; a nil list is empty.
func (n *ExpressionList) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Elements)
}

func (n *Identifier) String() string     { return render(n) }
func (n *Literal) String() string        { return render(n) }
func (n *Function) String() string       { return render(n) }
func (n *Asterisk) String() string       { return render(n) }
func (n *Subquery) String() string       { return render(n) }
func (n *OrderByElement) String() string { return render(n) }
func (n *ExpressionList) String() string { return render(n) }

func (n *Identifier) Equal(other Node) bool {
	o, ok := other.(*Identifier)
	if !ok {
		return false
	}
	if eq, more := compare.NilCheck(n, o); !more {
		return eq
	}
	return n.Name == o.Name && n.Alias == o.Alias
}

func (n *Literal) Equal(other Node) bool {
	o, ok := other.(*Literal)
	if !ok {
		return false
	}
	if eq, more := compare.NilCheck(n, o); !more {
		return eq
	}
	return n.Value.Equal(o.Value) && n.Alias == o.Alias
}

func (n *Function) Equal(other Node) bool {
	o, ok := other.(*Function)
	if !ok {
		return false
	}
	if eq, more := compare.NilCheck(n, o); !more {
		return eq
	}
	return n.Name == o.Name &&
		n.Alias == o.Alias &&
		compare.PointersWithEqual(n.Arguments, o.Arguments, (*ExpressionList).equal) &&
		compare.PointersWithEqual(n.Parameters, o.Parameters, (*ExpressionList).equal)
}

func (n *Asterisk) Equal(other Node) bool {
	o, ok := other.(*Asterisk)
	if !ok {
		return false
	}
	eq, more := compare.NilCheck(n, o)
	return eq || more
}

func (n *Subquery) Equal(other Node) bool {
	o, ok := other.(*Subquery)
	if !ok {
		return false
	}
	if eq, more := compare.NilCheck(n, o); !more {
		return eq
	}
	return equalNodes(n.Select, o.Select)
}

// Equal compares expression, direction and collation locale.
func (n *OrderByElement) Equal(other Node) bool {
	o, ok := other.(*OrderByElement)
	if !ok {
		return false
	}
	if eq, more := compare.NilCheck(n, o); !more {
		return eq
	}
	return n.Direction == o.Direction &&
		collationLocale(n.Collator) == collationLocale(o.Collator) &&
		equalNodes(n.Expression, o.Expression)
}

func (n *ExpressionList) Equal(other Node) bool {
	o, ok := other.(*ExpressionList)
	if !ok {
		return false
	}
	return n.equal(o)
}

func (n *ExpressionList) equal(o *ExpressionList) bool {
	if eq, more := compare.NilCheck(n, o); !more {
		return eq
	}
	return compare.Slices(n.Elements, o.Elements, equalNodes)
}

func equalNodes(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func collationLocale(c *collation.Collator) string {
	if c == nil {
		return ""
	}
	return c.Locale()
}
