package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// nodeDoc is the YAML shape of a node for parse --output yaml.
type nodeDoc struct {
	Kind       string     `yaml:"kind"`
	Span       []int      `yaml:"span,flow"`
	Name       string     `yaml:"name,omitempty"`
	Type       string     `yaml:"type,omitempty"`
	Value      any        `yaml:"value,omitempty"`
	Alias      string     `yaml:"alias,omitempty"`
	Direction  string     `yaml:"direction,omitempty"`
	Collation  string     `yaml:"collation,omitempty"`
	SQL        string     `yaml:"sql,omitempty"`
	Parameters []*nodeDoc `yaml:"parameters,omitempty"`
	Arguments  []*nodeDoc `yaml:"arguments,omitempty"`
	Elements   []*nodeDoc `yaml:"elements,omitempty"`
}

// parseCmd creates the parse command, which prints the syntax tree of an
// expression.
//
// Examples:
//
//	# Indented tree with byte spans
//	chexpr parse 'sum(x) AS total'
//
//	# YAML document
//	chexpr parse -o yaml --list 'a, b + 1'
//
//	# ORDER BY body from stdin
//	echo "name COLLATE 'de', id DESC" | chexpr parse --order-by -
func parseCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Print the syntax tree of an expression",
		ArgsUsage: "<expr>|-",
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format: tree or yaml",
				Value:   "tree",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			output := cmd.String("output")
			if output != "tree" && output != "yaml" {
				return errors.Errorf("unknown output format: %s", output)
			}

			node, _, err := parseInput(cmd, cfg.GetParser())
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if output == "yaml" {
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(toDoc(node)); err != nil {
					return errors.Wrap(err, "failed to encode YAML")
				}
				return enc.Close()
			}

			return writeTree(w, node, 0)
		},
	}
}

// writeTree prints one line per node, children indented by two spaces.
func writeTree(w io.Writer, n ast.Node, depth int) error {
	fields := []string{n.Kind().String()}
	if detail := nodeDetail(n); detail != "" {
		fields = append(fields, detail)
	}
	fields = append(fields, n.Span().String())

	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), strings.Join(fields, " ")); err != nil {
		return errors.Wrap(err, "failed to write tree")
	}

	for _, child := range treeChildren(n) {
		if err := writeTree(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// treeChildren keeps the argument and parameter lists of a function apart.
func treeChildren(n ast.Node) []ast.Node {
	fn, ok := n.(*ast.Function)
	if !ok {
		return n.Children()
	}

	var children []ast.Node
	if fn.Parameters != nil {
		children = append(children, fn.Parameters)
	}
	if fn.Arguments != nil {
		children = append(children, fn.Arguments)
	}
	return children
}

func nodeDetail(n ast.Node) string {
	var detail string
	switch n := n.(type) {
	case *ast.Identifier:
		detail = n.Name
	case *ast.Literal:
		detail = n.Value.Type().String() + " " + n.Value.String()
	case *ast.Function:
		detail = n.Name
	case *ast.OrderByElement:
		detail = "ASC"
		if n.Direction == ast.Descending {
			detail = "DESC"
		}
		if n.Collator != nil {
			detail += " COLLATE " + ast.QuoteString(n.Collator.Locale())
		}
	case *ast.ExpressionList:
		detail = fmt.Sprintf("(%d)", n.Len())
	case *ast.Asterisk, *ast.Subquery:
	default:
		detail = n.String()
	}

	if alias := ast.AliasOf(n); alias != "" {
		detail += " AS " + ast.QuoteIdentifier(alias)
	}
	return detail
}

func toDoc(n ast.Node) *nodeDoc {
	span := n.Span()
	doc := &nodeDoc{
		Kind:  n.Kind().String(),
		Span:  []int{span.Start, span.End},
		Alias: ast.AliasOf(n),
	}

	switch n := n.(type) {
	case *ast.Identifier:
		doc.Name = n.Name
	case *ast.Literal:
		doc.Type = n.Value.Type().String()
		doc.Value = n.Value.Interface()
	case *ast.Function:
		doc.Name = n.Name
		if n.Parameters != nil {
			doc.Parameters = docs(n.Parameters.Elements)
		}
		if n.Arguments != nil {
			doc.Arguments = docs(n.Arguments.Elements)
		}
	case *ast.OrderByElement:
		doc.Direction = "ASC"
		if n.Direction == ast.Descending {
			doc.Direction = "DESC"
		}
		if n.Collator != nil {
			doc.Collation = n.Collator.Locale()
		}
		doc.Elements = docs(n.Children())
	case *ast.ExpressionList:
		doc.Elements = docs(n.Elements)
	case *ast.Subquery:
		doc.Elements = docs(n.Children())
	case *ast.Asterisk:
	default:
		doc.SQL = n.String()
	}

	return doc
}

func docs(nodes []ast.Node) []*nodeDoc {
	var out []*nodeDoc
	for _, n := range nodes {
		out = append(out, toDoc(n))
	}
	return out
}
