package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/consts"
)

type (
	// FormatterOptions controls formatting behavior.
	FormatterOptions struct {
		// IndentSize is the number of spaces per level in EXPLAIN output.
		// ClickHouse uses 1.
		IndentSize int

		// UppercaseKeywords renders AS, NULL, AND, DESC, ... in upper case.
		UppercaseKeywords bool
	}

	// Formatter renders nodes with a fixed set of options.
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults matches ClickHouse's own output.
var Defaults = FormatterOptions{
	IndentSize:        consts.DefaultIndentSize,
	UppercaseKeywords: true,
}

// New creates a new Formatter with the specified options.
func New(options FormatterOptions) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = Defaults.IndentSize
	}
	return &Formatter{options: options}
}

// NewDefault creates a new Formatter with Defaults.
func NewDefault() *Formatter {
	return New(Defaults)
}

// Options returns the options the formatter was created with.
func (f *Formatter) Options() FormatterOptions {
	return f.options
}

// Node renders n as SQL.
func (f *Formatter) Node(n ast.Node) string {
	return ast.Style{LowercaseKeywords: !f.options.UppercaseKeywords}.Render(n)
}

// Format writes each node as SQL on its own line.
func (f *Formatter) Format(w io.Writer, nodes ...ast.Node) error {
	for _, n := range nodes {
		if _, err := io.WriteString(w, f.Node(n)+"\n"); err != nil {
			return errors.Wrap(err, "failed to write formatted SQL")
		}
	}
	return nil
}

// Explain writes the EXPLAIN AST rendering of each node.
func (f *Formatter) Explain(w io.Writer, nodes ...ast.Node) error {
	for _, n := range nodes {
		if _, err := io.WriteString(w, f.explain(n)); err != nil {
			return errors.Wrap(err, "failed to write EXPLAIN output")
		}
	}
	return nil
}

// indent returns the specified number of indent levels as spaces.
func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.options.IndentSize)
}

// Format formats nodes using the given options (convenience function).
func Format(w io.Writer, options FormatterOptions, nodes ...ast.Node) error {
	return New(options).Format(w, nodes...)
}

// Explain returns the EXPLAIN AST rendering of n with default options.
func Explain(n ast.Node) string {
	return NewDefault().explain(n)
}
