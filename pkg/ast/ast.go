// Package ast defines the syntax tree produced by the expression parser.
//
// Every node is a pointer to one of a closed set of variants. The tree is
// single-owner: children are built before their parent and never shared.
// Nodes remember the byte span of the input they were parsed from and can
// re-serialize themselves to SQL with String.
//
// Equality (Equal) is structural and ignores spans, so a node parsed from
// "f(1,2)" equals one parsed from "f( 1 , 2 )".
package ast

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindIdentifier Kind = iota + 1
	KindLiteral
	KindFunction
	KindAsterisk
	KindSubquery
	KindOrderByElement
	KindExpressionList
	KindSelect
)

var kindNames = map[Kind]string{
	KindIdentifier:     "Identifier",
	KindLiteral:        "Literal",
	KindFunction:       "Function",
	KindAsterisk:       "Asterisk",
	KindSubquery:       "Subquery",
	KindOrderByElement: "OrderByElement",
	KindExpressionList: "ExpressionList",
	KindSelect:         "Select",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a half-open byte range [Start, End) into the parsed input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the part of input the span covers.
func (s Span) Text(input string) string {
	return input[s.Start:s.End]
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Node is implemented by every AST variant.
type Node interface {
	Kind() Kind
	Span() Span
	Children() []Node
	String() string
	Equal(other Node) bool
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// SetSpan replaces the span of n. Parsers use it when a node ends up
// covering more text than the rule that built it, such as a trailing alias
// or the parentheses around a single expression.
func SetSpan(n Node, s Span) {
	if v, ok := n.(interface{ setSpan(Span) }); ok {
		v.setSpan(s)
	}
}

// Extend moves the end of n's span to end.
func Extend(n Node, end int) {
	SetSpan(n, Span{Start: n.Span().Start, End: end})
}
