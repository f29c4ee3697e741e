package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/parser"
	"github.com/urfave/cli/v3"
)

type inputMode int

const (
	modeExpression inputMode = iota
	modeList
	modeOrderBy
)

// inputFlags are shared by every command that takes an expression.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "parse a comma-separated expression list",
		},
		&cli.BoolFlag{
			Name:  "order-by",
			Usage: "parse the body of an ORDER BY clause",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read the expression from `PATH`",
		},
	}
}

func modeOf(cmd *cli.Command) (inputMode, error) {
	switch {
	case cmd.Bool("list") && cmd.Bool("order-by"):
		return 0, errors.New("--list and --order-by cannot be used together")
	case cmd.Bool("list"):
		return modeList, nil
	case cmd.Bool("order-by"):
		return modeOrderBy, nil
	default:
		return modeExpression, nil
	}
}

// readInput returns the expression text from --file, the single argument, or
// standard input when the argument is "-" or missing.
func readInput(cmd *cli.Command) (string, error) {
	if path := cmd.String("file"); path != "" {
		if cmd.Args().Len() > 0 {
			return "", errors.New("an expression argument cannot be combined with --file")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read file: %s", path)
		}
		return string(data), nil
	}

	switch cmd.Args().Len() {
	case 0:
	case 1:
		if arg := cmd.Args().First(); arg != "-" {
			return arg, nil
		}
	default:
		return "", errors.New("exactly one expression argument is required (quote it, or pass - to read stdin)")
	}

	data, err := io.ReadAll(cmd.Root().Reader)
	if err != nil {
		return "", errors.Wrap(err, "failed to read standard input")
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("no expression given")
	}
	return string(data), nil
}

// parseInput reads the command's input and parses it according to the mode
// flags.
func parseInput(cmd *cli.Command, engine *parser.Engine) (ast.Node, inputMode, error) {
	mode, err := modeOf(cmd)
	if err != nil {
		return nil, mode, err
	}

	input, err := readInput(cmd)
	if err != nil {
		return nil, mode, err
	}

	var node ast.Node
	switch mode {
	case modeList:
		var list *ast.ExpressionList
		if list, err = engine.ParseExpressionList(input); err == nil {
			node = list
		}
	case modeOrderBy:
		var list *ast.ExpressionList
		if list, err = engine.ParseOrderBy(input); err == nil {
			node = list
		}
	default:
		node, err = engine.ParseExpression(input)
	}

	return node, mode, err
}
