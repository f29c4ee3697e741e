package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/config"
	"github.com/pseudomuto/chexpr/pkg/consts"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates the fmt command, which prints an expression as canonical
// SQL: operators become fully parenthesized infix, literals are normalized and
// identifiers are quoted only when needed. Keyword case follows
// format.uppercase_keywords in the config.
//
// Examples:
//
//	# Print canonical SQL
//	chexpr fmt 'a+b*c AS x'          # (a + (b * c)) AS x
//
//	# Rewrite a file holding a SELECT list in place
//	chexpr fmt --list -w -f columns.sql
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Print an expression as canonical SQL",
		ArgsUsage: "<expr>|-",
		Flags: append(inputFlags(),
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "write the result back to the --file instead of stdout",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("file")
			if cmd.Bool("write") && path == "" {
				return errors.New("--write requires --file")
			}

			node, _, err := parseInput(cmd, cfg.GetParser())
			if err != nil {
				return err
			}

			var buf strings.Builder
			if err := cfg.GetFormatter().Format(&buf, node); err != nil {
				return err
			}

			if cmd.Bool("write") {
				if err := os.WriteFile(path, []byte(buf.String()), consts.ModeFile); err != nil {
					return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
				}
				return nil
			}

			_, err = io.WriteString(cmd.Root().Writer, buf.String())
			return errors.Wrap(err, "failed to write formatted content to output")
		},
	}
}
