package query

import "strings"

// Expressions inside a SELECT follow the usual precedence ladder, loosest
// first: OR, AND, NOT, comparison, + -, * / %, unary minus.
type (
	Expr struct {
		Or []*AndExpr `parser:"@@ ('OR' @@)*"`
	}

	AndExpr struct {
		And []*NotExpr `parser:"@@ ('AND' @@)*"`
	}

	NotExpr struct {
		Not        bool        `parser:"@'NOT'?"`
		Comparison *Comparison `parser:"@@"`
	}

	Comparison struct {
		Left  *Sum        `parser:"@@"`
		Right *CompareRHS `parser:"@@?"`
	}

	CompareRHS struct {
		Not   bool   `parser:"@'NOT'?"`
		Op    string `parser:"@('==' | '!=' | '<>' | '<=' | '>=' | '=' | '<' | '>' | 'LIKE' | 'IN')"`
		Right *Sum   `parser:"@@"`
	}

	Sum struct {
		Left *Product `parser:"@@"`
		Rest []*SumOp `parser:"@@*"`
	}

	SumOp struct {
		Op    string   `parser:"@('+' | '-')"`
		Right *Product `parser:"@@"`
	}

	Product struct {
		Left *Unary       `parser:"@@"`
		Rest []*ProductOp `parser:"@@*"`
	}

	ProductOp struct {
		Op    string `parser:"@('*' | '/' | '%')"`
		Right *Unary `parser:"@@"`
	}

	Unary struct {
		Minus   bool     `parser:"@'-'?"`
		Primary *Primary `parser:"@@"`
	}

	// Primary is an operand. Exactly one field is set.
	Primary struct {
		Subquery *Union  `parser:"  '(' @@ ')'"`
		Tuple    *Tuple  `parser:"| @@"`
		Array    *Array  `parser:"| @@"`
		Number   *string `parser:"| @Number"`
		Str      *string `parser:"| @String"`
		Null     bool    `parser:"| @'NULL'"`
		Star     bool    `parser:"| @'*'"`
		Call     *Call   `parser:"| @@"`
		Name     *Name   `parser:"| @@"`
	}

	// Tuple is a parenthesized expression list; one element is plain grouping.
	Tuple struct {
		Open     string  `parser:"@'('"`
		Elements []*Expr `parser:"@@ (',' @@)* ')'"`
	}

	Array struct {
		Open     string  `parser:"@'['"`
		Elements []*Expr `parser:"(@@ (',' @@)*)? ']'"`
	}

	// Call is f(args) or the parametric f(params)(args), in which case the
	// first list is Params and Args holds the second.
	Call struct {
		Name   string   `parser:"@(Ident | BacktickIdent) '('"`
		Params []*Expr  `parser:"(@@ (',' @@)*)? ')'"`
		Args   *ArgList `parser:"@@?"`
	}

	ArgList struct {
		Open     string  `parser:"@'('"`
		Elements []*Expr `parser:"(@@ (',' @@)*)? ')'"`
	}

	// Name is a possibly qualified identifier.
	Name struct {
		Parts []string `parser:"@(Ident | BacktickIdent) ('.' @(Ident | BacktickIdent))*"`
	}
)

func (e *Expr) String() string    { return join(e.Or, " OR ") }
func (e *AndExpr) String() string { return join(e.And, " AND ") }

func (e *NotExpr) String() string {
	if e.Not {
		return "NOT " + e.Comparison.String()
	}
	return e.Comparison.String()
}

func (c *Comparison) String() string {
	if c.Right == nil {
		return c.Left.String()
	}

	op := strings.ToUpper(c.Right.Op)
	if c.Right.Not {
		op = "NOT " + op
	}
	return c.Left.String() + " " + op + " " + c.Right.Right.String()
}

func (s *Sum) String() string {
	var b strings.Builder
	b.WriteString(s.Left.String())
	for _, r := range s.Rest {
		b.WriteString(" " + r.Op + " " + r.Right.String())
	}
	return b.String()
}

func (p *Product) String() string {
	var b strings.Builder
	b.WriteString(p.Left.String())
	for _, r := range p.Rest {
		b.WriteString(" " + r.Op + " " + r.Right.String())
	}
	return b.String()
}

func (u *Unary) String() string {
	if u.Minus {
		return "-" + u.Primary.String()
	}
	return u.Primary.String()
}

func (p *Primary) String() string {
	switch {
	case p.Subquery != nil:
		return "(" + p.Subquery.String() + ")"
	case p.Tuple != nil:
		return "(" + join(p.Tuple.Elements, ", ") + ")"
	case p.Array != nil:
		return "[" + join(p.Array.Elements, ", ") + "]"
	case p.Number != nil:
		return *p.Number
	case p.Str != nil:
		return *p.Str
	case p.Null:
		return "NULL"
	case p.Star:
		return "*"
	case p.Call != nil:
		return p.Call.String()
	case p.Name != nil:
		return p.Name.String()
	default:
		return ""
	}
}

func (c *Call) String() string {
	s := c.Name + "(" + join(c.Params, ", ") + ")"
	if c.Args != nil {
		s += "(" + join(c.Args.Elements, ", ") + ")"
	}
	return s
}

func (n *Name) String() string {
	return strings.Join(n.Parts, ".")
}
