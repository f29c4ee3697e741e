package parser

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/collation"
	"github.com/pseudomuto/chexpr/pkg/consts"
)

// Parser is implemented by every grammar rule.
//
// On success Parse returns the node and leaves the cursor just past the
// consumed text; the node's span is exactly that text. On a soft failure it
// returns a *Mismatch, and the cursor may have moved: a caller trying
// alternatives must save c.Pos() beforehand and Reset to it. Any other error
// is fatal and must be returned as is.
type Parser interface {
	Parse(c *Cursor) (ast.Node, error)
}

type (
	// Engine runs a grammar rule over a whole input string and converts
	// failures into a *ParseError that points at the offending position.
	Engine struct {
		maxDepth     int
		maxQuerySize int
		collators    CollatorFactory
	}

	// Option configures an Engine.
	Option func(*Engine)
)

// New returns an Engine with the default limits.
//
// Example:
//
//	e := parser.New(parser.WithMaxDepth(100))
//	node, err := e.ParseExpression("quantile(0.9)(response_time) AS p90")
//	if err != nil {
//		var perr *parser.ParseError
//		if errors.As(err, &perr) {
//			fmt.Println(perr.Line, perr.Column, perr.Expected)
//		}
//		return err
//	}
//	fmt.Println(node) // quantile(0.9)(response_time) AS p90
func New(opts ...Option) *Engine {
	e := &Engine{
		maxDepth:     consts.DefaultMaxDepth,
		maxQuerySize: consts.DefaultMaxQuerySize,
		collators:    collation.Default,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithMaxDepth limits how deeply expressions may nest. Zero disables the
// limit.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) { e.maxDepth = depth }
}

// WithMaxQuerySize limits the input size in bytes. Zero disables the limit.
func WithMaxQuerySize(size int) Option {
	return func(e *Engine) { e.maxQuerySize = size }
}

// WithCollators sets where ORDER BY ... COLLATE looks up collators.
func WithCollators(f CollatorFactory) Option {
	return func(e *Engine) { e.collators = f }
}

// ParseExpression parses a single expression with an optional alias.
func (e *Engine) ParseExpression(text string) (ast.Node, error) {
	return e.Parse(text, WithOptionalAlias{Elem: Expression{}})
}

// ParseExpressionList parses a possibly empty comma-separated list of
// expressions, as found in a SELECT list.
func (e *Engine) ParseExpressionList(text string) (*ast.ExpressionList, error) {
	node, err := e.Parse(text, ExpressionList{})
	if err != nil {
		return nil, err
	}
	return node.(*ast.ExpressionList), nil
}

// ParseOrderBy parses the body of an ORDER BY clause.
func (e *Engine) ParseOrderBy(text string) (*ast.ExpressionList, error) {
	node, err := e.Parse(text, ExpressionList{Elem: OrderByElement{Collators: e.collators}})
	if err != nil {
		return nil, err
	}
	return node.(*ast.ExpressionList), nil
}

// Parse runs p over text. Leading and trailing whitespace and comments are
// allowed; anything else left over is an error.
func (e *Engine) Parse(text string, p Parser) (ast.Node, error) {
	if e.maxQuerySize > 0 && len(text) > e.maxQuerySize {
		err := &SyntaxError{
			Pos: e.maxQuerySize,
			Msg: fmt.Sprintf("query is too large (%d bytes), maximum is %d", len(text), e.maxQuerySize),
		}
		return nil, newParseError(text, err.Pos, "", err)
	}

	c := NewCursor(text)
	c.maxDepth = e.maxDepth

	ws(c)
	node, err := p.Parse(c)
	if err != nil {
		var syn *SyntaxError
		if errors.As(err, &syn) {
			return nil, newParseError(text, syn.Pos, "", err)
		}

		pos, expected := c.Expected()
		if pos < 0 {
			return nil, newParseError(text, c.Pos(), "", err)
		}
		return nil, newParseError(text, pos, expected, err)
	}

	ws(c)
	if !c.EOF() {
		if pos, _ := c.Expected(); pos < c.Pos() {
			_ = c.Fail("end of query")
		}
		pos, expected := c.Expected()
		return nil, newParseError(text, pos, expected, &Mismatch{Pos: pos, Expected: expected})
	}

	return node, nil
}
