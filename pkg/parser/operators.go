package parser

import (
	"strconv"

	"github.com/pseudomuto/chexpr/pkg/ast"
)

// Expression parses a full scalar expression with ClickHouse operator
// precedence. Operators become Function nodes named after the function they
// call, so a + b * c is plus(a, multiply(b, c)).
//
// From loosest to tightest binding:
//
//	OR
//	AND
//	NOT (prefix)
//	= == != <> < > <= >= LIKE, NOT LIKE, IN, NOT IN, GLOBAL IN, GLOBAL NOT IN
//	+ -
//	* / %
//	- (prefix)
//	x[i], x.N
type Expression struct{}

type operator struct {
	fn    string
	words []Token
}

func op(fn string, words ...string) operator {
	o := operator{fn: fn}
	for _, w := range words {
		if isAlpha(w[0]) {
			o.words = append(o.words, Keyword(w))
		} else {
			o.words = append(o.words, Punct(w))
		}
	}
	return o
}

var (
	orOperators  = []operator{op("or", "OR")}
	andOperators = []operator{op("and", "AND")}

	// Longer spellings come first so <= is not read as <.
	comparisonOperators = []operator{
		op("equals", "=="),
		op("notEquals", "!="),
		op("notEquals", "<>"),
		op("lessOrEquals", "<="),
		op("greaterOrEquals", ">="),
		op("less", "<"),
		op("greater", ">"),
		op("equals", "="),
		op("notLike", "NOT", "LIKE"),
		op("like", "LIKE"),
		op("globalNotIn", "GLOBAL", "NOT", "IN"),
		op("globalIn", "GLOBAL", "IN"),
		op("notIn", "NOT", "IN"),
		op("in", "IN"),
	}

	additiveOperators       = []operator{op("plus", "+"), op("minus", "-")}
	multiplicativeOperators = []operator{op("multiply", "*"), op("divide", "/"), op("modulo", "%")}
)

func (Expression) Parse(c *Cursor) (ast.Node, error) {
	return parseOr(c)
}

func parseOr(c *Cursor) (ast.Node, error) {
	return leftAssociative(c, orOperators, parseAnd)
}

func parseAnd(c *Cursor) (ast.Node, error) {
	return leftAssociative(c, andOperators, parseNot)
}

func parseComparison(c *Cursor) (ast.Node, error) {
	return leftAssociative(c, comparisonOperators, parseAdditive)
}

func parseAdditive(c *Cursor) (ast.Node, error) {
	return leftAssociative(c, additiveOperators, parseMultiplicative)
}

func parseMultiplicative(c *Cursor) (ast.Node, error) {
	return leftAssociative(c, multiplicativeOperators, parseUnary)
}

func leftAssociative(c *Cursor, ops []operator, next func(*Cursor) (ast.Node, error)) (ast.Node, error) {
	begin := c.Pos()

	left, err := next(c)
	if err != nil {
		return nil, err
	}

	for {
		end := c.Pos()
		ws(c)

		o, ok := matchOperator(c, ops)
		if !ok {
			c.Reset(end)
			return left, nil
		}

		ws(c)
		right, err := next(c)
		if err != nil {
			return nil, err
		}

		left = call(c, begin, o.fn, left, right)
	}
}

// matchOperator consumes the first operator in ops found at the cursor.
// Words of multi-word operators may be separated by whitespace.
func matchOperator(c *Cursor, ops []operator) (operator, bool) {
	begin := c.Pos()

outer:
	for _, o := range ops {
		c.Reset(begin)
		for i, w := range o.words {
			if i > 0 {
				ws(c)
			}
			if !w.Check(c) {
				continue outer
			}
			c.Advance(len(w.Text))
		}
		return o, true
	}

	c.Reset(begin)
	return operator{}, false
}

func parseNot(c *Cursor) (ast.Node, error) {
	begin := c.Pos()

	if _, ok := acceptKeyword(c, "NOT"); ok {
		ws(c)
		if err := c.Enter(); err != nil {
			return nil, err
		}
		operand, err := parseNot(c)
		c.Leave()

		switch {
		case err == nil:
			return call(c, begin, "not", operand), nil
		case !IsMismatch(err):
			return nil, err
		}

		// NOT on its own is a column name.
		c.Reset(begin)
	}

	return parseComparison(c)
}

// parseUnary handles prefix minus. A minus that starts a number literal is
// part of the literal, so -1 is Int64 -1 rather than negate(1).
func parseUnary(c *Cursor) (ast.Node, error) {
	begin := c.Pos()
	if c.Peek() != '-' {
		return parseAccess(c)
	}

	if node, err := (Number{}).Parse(c); err == nil {
		return node, nil
	}

	c.Reset(begin + 1)
	ws(c)
	if err := c.Enter(); err != nil {
		return nil, err
	}
	defer c.Leave()

	operand, err := parseUnary(c)
	if err != nil {
		return nil, err
	}
	return call(c, begin, "negate", operand), nil
}

// parseAccess parses an element followed by any number of x[i] and x.N
// accessors.
func parseAccess(c *Cursor) (ast.Node, error) {
	begin := c.Pos()

	node, err := ExpressionElement{}.Parse(c)
	if err != nil {
		return nil, err
	}

	for {
		end := c.Pos()

		if c.Peek() == '.' && isDigit(c.PeekAt(1)) {
			c.Advance(1)
			idxBegin := c.Pos()
			n := 0
			for isDigit(c.PeekAt(n)) {
				n++
			}
			idx, err := strconv.ParseUint(c.Rest()[:n], 10, 64)
			if err != nil {
				return nil, c.Fail("tuple element index")
			}
			c.Advance(n)

			index := &ast.Literal{Loc: c.Span(idxBegin), Value: ast.UIntValue(idx)}
			node = call(c, begin, "tupleElement", node, index)
			continue
		}

		ws(c)
		if !Punct("[").Check(c) {
			c.Reset(end)
			return node, nil
		}
		c.Advance(1)

		ws(c)
		index, err := parseOr(c)
		if err != nil {
			return nil, err
		}

		ws(c)
		if err := Punct("]").Expect(c); err != nil {
			return nil, err
		}
		node = call(c, begin, "arrayElement", node, index)
	}
}

func call(c *Cursor, begin int, name string, args ...ast.Node) *ast.Function {
	span := c.Span(begin)
	return &ast.Function{
		Loc:       span,
		Name:      name,
		Arguments: &ast.ExpressionList{Loc: span, Elements: args},
	}
}
