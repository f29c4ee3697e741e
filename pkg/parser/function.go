package parser

import (
	"fmt"
	"regexp"

	"github.com/pseudomuto/chexpr/pkg/ast"
)

// unquotedDate matches arguments like 2014-01-01 that were meant to be a
// quoted date but would silently evaluate as subtraction.
var unquotedDate = regexp.MustCompile(`^[23]\d{3}-\d{2}-\d{2}$`)

// Function parses name(args) and the parametric form name(params)(args),
// e.g. quantile(0.9)(x).
type Function struct{}

func (Function) Parse(c *Cursor) (ast.Node, error) {
	begin := c.Pos()

	name, err := Identifier{}.Parse(c)
	if err != nil {
		return nil, err
	}

	ws(c)
	args, raw, err := parenthesizedList(c)
	if err != nil {
		return nil, err
	}

	fn := &ast.Function{
		Name:      name.(*ast.Identifier).Name,
		Arguments: args,
	}

	if fn.Name == "toDate" && unquotedDate.MatchString(raw) {
		return nil, &SyntaxError{
			Pos: args.Loc.Start,
			Msg: fmt.Sprintf("Argument of function toDate is unquoted: toDate(%s), must be: toDate('%s')", raw, raw),
		}
	}

	end := c.Pos()
	ws(c)
	if Punct("(").Check(c) {
		second, _, err := parenthesizedList(c)
		if err != nil {
			return nil, err
		}
		fn.Parameters, fn.Arguments = args, second
		end = c.Pos()
	}

	c.Reset(end)
	fn.Loc = c.Span(begin)
	return fn, nil
}

// parenthesizedList parses ( list ) and also returns the raw text of the
// list without the surrounding whitespace.
func parenthesizedList(c *Cursor) (*ast.ExpressionList, string, error) {
	if err := Punct("(").Expect(c); err != nil {
		return nil, "", err
	}

	ws(c)
	list, err := parseList(c, nil)
	if err != nil {
		return nil, "", err
	}

	ws(c)
	if err := Punct(")").Expect(c); err != nil {
		return nil, "", err
	}

	return list, list.Loc.Text(c.Input()), nil
}
