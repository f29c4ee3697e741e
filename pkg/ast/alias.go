package ast

// Aliasable is implemented by the node variants that may carry an AS alias:
// Function, Identifier and Literal.
type Aliasable interface {
	Node
	SetAlias(name string)
	AliasName() string
}

func (n *Identifier) SetAlias(name string) { n.Alias = name }
func (n *Literal) SetAlias(name string)    { n.Alias = name }
func (n *Function) SetAlias(name string)   { n.Alias = name }
func (n *Identifier) AliasName() string    { return n.Alias }
func (n *Literal) AliasName() string       { return n.Alias }
func (n *Function) AliasName() string      { return n.Alias }

// SetAlias attaches name to n when the variant supports aliases and reports
// whether it did. Subqueries, asterisks, ORDER BY elements and lists cannot
// be aliased.
func SetAlias(n Node, name string) bool {
	switch n := n.(type) {
	case *Function:
		n.SetAlias(name)
	case *Identifier:
		n.SetAlias(name)
	case *Literal:
		n.SetAlias(name)
	default:
		return false
	}
	return true
}

// AliasOf returns the alias of n, or "" when it has none or cannot have one.
func AliasOf(n Node) string {
	if a, ok := n.(Aliasable); ok {
		return a.AliasName()
	}
	return ""
}
