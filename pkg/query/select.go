package query

import "strings"

type (
	// Union is one or more SELECTs joined with UNION ALL.
	Union struct {
		Selects []*Select `parser:"@@ ('UNION' 'ALL' @@)*"`
	}

	// Select is a single SELECT query.
	Select struct {
		With     []*WithItem  `parser:"('WITH' @@ (',' @@)*)?"`
		Distinct bool         `parser:"'SELECT' @'DISTINCT'?"`
		Columns  []*Column    `parser:"@@ (',' @@)*"`
		From     *From        `parser:"('FROM' @@)?"`
		Where    *Expr        `parser:"('WHERE' @@)?"`
		GroupBy  []*Expr      `parser:"('GROUP' 'BY' @@ (',' @@)*)?"`
		Having   *Expr        `parser:"('HAVING' @@)?"`
		OrderBy  []*OrderTerm `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Limit    *Limit       `parser:"@@?"`
		Settings []*Setting   `parser:"('SETTINGS' @@ (',' @@)*)?"`
	}

	// WithItem is a ClickHouse WITH <expr> AS <name> binding.
	WithItem struct {
		Expr  *Expr  `parser:"@@"`
		Alias string `parser:"'AS' @(Ident | BacktickIdent)"`
	}

	// Column is a SELECT list entry.
	Column struct {
		Expr  *Expr   `parser:"@@"`
		Alias *string `parser:"('AS' @(Ident | BacktickIdent))?"`
	}

	// From is the FROM clause with any joins.
	From struct {
		Table *TableExpr `parser:"@@"`
		Joins []*Join    `parser:"@@*"`
	}

	// TableExpr is a table name, table function or subquery.
	TableExpr struct {
		Subquery *Union  `parser:"( '(' @@ ')'"`
		Function *Call   `parser:"| @@"`
		Name     *Name   `parser:"| @@ )"`
		Final    bool    `parser:"@'FINAL'?"`
		Alias    *string `parser:"('AS' @(Ident | BacktickIdent))?"`
	}

	// Join is a JOIN clause.
	Join struct {
		Global bool       `parser:"@'GLOBAL'?"`
		Type   *string    `parser:"@('INNER' | 'LEFT' | 'RIGHT' | 'FULL' | 'CROSS')?"`
		Table  *TableExpr `parser:"'JOIN' @@"`
		On     *Expr      `parser:"( 'ON' @@"`
		Using  []string   `parser:"| 'USING' '(' @(Ident | BacktickIdent) (',' @(Ident | BacktickIdent))* ')' )?"`
	}

	// OrderTerm is an ORDER BY entry.
	OrderTerm struct {
		Expr      *Expr   `parser:"@@"`
		Direction *string `parser:"@('ASCENDING' | 'ASC' | 'DESCENDING' | 'DESC')?"`
		Collate   *string `parser:"('COLLATE' @String)?"`
	}

	// Limit is LIMIT n [OFFSET m].
	Limit struct {
		Count  string  `parser:"'LIMIT' @Number"`
		Offset *string `parser:"('OFFSET' @Number)?"`
	}

	// Setting is a name = value pair in a SETTINGS clause.
	Setting struct {
		Name  string `parser:"@Ident '='"`
		Value *Expr  `parser:"@@"`
	}
)

func (u *Union) String() string {
	return join(u.Selects, " UNION ALL ")
}

func (s *Select) String() string {
	var b strings.Builder

	if len(s.With) > 0 {
		b.WriteString("WITH " + join(s.With, ", ") + " ")
	}

	b.WriteString("SELECT ")
	if s.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(join(s.Columns, ", "))

	if s.From != nil {
		b.WriteString(" FROM " + s.From.String())
	}
	if s.Where != nil {
		b.WriteString(" WHERE " + s.Where.String())
	}
	if len(s.GroupBy) > 0 {
		b.WriteString(" GROUP BY " + join(s.GroupBy, ", "))
	}
	if s.Having != nil {
		b.WriteString(" HAVING " + s.Having.String())
	}
	if len(s.OrderBy) > 0 {
		b.WriteString(" ORDER BY " + join(s.OrderBy, ", "))
	}
	if s.Limit != nil {
		b.WriteString(" " + s.Limit.String())
	}
	if len(s.Settings) > 0 {
		b.WriteString(" SETTINGS " + join(s.Settings, ", "))
	}

	return b.String()
}

func (w *WithItem) String() string {
	return w.Expr.String() + " AS " + w.Alias
}

func (c *Column) String() string {
	if c.Alias != nil {
		return c.Expr.String() + " AS " + *c.Alias
	}
	return c.Expr.String()
}

func (f *From) String() string {
	var b strings.Builder
	b.WriteString(f.Table.String())
	for _, j := range f.Joins {
		b.WriteString(" " + j.String())
	}
	return b.String()
}

func (t *TableExpr) String() string {
	var s string
	switch {
	case t.Subquery != nil:
		s = "(" + t.Subquery.String() + ")"
	case t.Function != nil:
		s = t.Function.String()
	case t.Name != nil:
		s = t.Name.String()
	}

	if t.Final {
		s += " FINAL"
	}
	if t.Alias != nil {
		s += " AS " + *t.Alias
	}
	return s
}

func (j *Join) String() string {
	var parts []string
	if j.Global {
		parts = append(parts, "GLOBAL")
	}
	if j.Type != nil {
		parts = append(parts, strings.ToUpper(*j.Type))
	}
	parts = append(parts, "JOIN", j.Table.String())

	switch {
	case j.On != nil:
		parts = append(parts, "ON", j.On.String())
	case len(j.Using) > 0:
		parts = append(parts, "USING ("+strings.Join(j.Using, ", ")+")")
	}

	return strings.Join(parts, " ")
}

func (o *OrderTerm) String() string {
	s := o.Expr.String()
	if o.Direction != nil {
		s += " " + strings.ToUpper(*o.Direction)
	}
	if o.Collate != nil {
		s += " COLLATE " + *o.Collate
	}
	return s
}

func (l *Limit) String() string {
	if l.Offset != nil {
		return "LIMIT " + l.Count + " OFFSET " + *l.Offset
	}
	return "LIMIT " + l.Count
}

func (s *Setting) String() string {
	return s.Name + " = " + s.Value.String()
}
