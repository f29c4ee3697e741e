package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/ast"
	"github.com/pseudomuto/chexpr/pkg/clickhouse"
	"github.com/pseudomuto/chexpr/pkg/config"
	"github.com/pseudomuto/chexpr/pkg/format"
	"github.com/urfave/cli/v3"
)

// explainer is the part of *clickhouse.Client used by explain --compare.
type explainer interface {
	ExplainAST(ctx context.Context, exprs string) (string, error)
	ExplainOrderBy(ctx context.Context, orderBy string) (string, error)
	GetVersion(ctx context.Context) (*clickhouse.VersionInfo, error)
	Close() error
}

// connect opens the server connection for --compare. Tests replace it.
var connect = func(ctx context.Context, opts clickhouse.ClientOptions) (explainer, error) {
	return clickhouse.NewClientWithOptions(ctx, opts)
}

// explainCmd creates the explain command, which prints the expression the way
// ClickHouse's EXPLAIN AST does. With --compare the canonical SQL of the
// expression is sent to a server as EXPLAIN AST SELECT <sql> and any
// difference is reported as a unified diff.
//
// Examples:
//
//	chexpr explain 'quantile(0.9)(x)'
//	chexpr explain --list --compare 'a + 1, b AS c'
//	chexpr explain --order-by --compare --dsn clickhouse://ch:9000 'x DESC'
func explainCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Usage:     "Print an expression as ClickHouse EXPLAIN AST",
		ArgsUsage: "<expr>|-",
		Flags: append(inputFlags(),
			&cli.BoolFlag{
				Name:  "compare",
				Usage: "compare the output with a ClickHouse server's EXPLAIN AST",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "the ClickHouse server to compare with (defaults to clickhouse.dsn in the config)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			node, mode, err := parseInput(cmd, cfg.GetParser())
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if !cmd.Bool("compare") {
				return cfg.GetFormatter().Explain(w, node)
			}

			opts := cfg.GetClientOptions()
			if dsn := cmd.String("dsn"); dsn != "" {
				opts.DSN = dsn
			}

			return compareExplain(ctx, w, opts, cfg.ClickHouse.Version, node, mode)
		},
	}
}

func compareExplain(ctx context.Context, w io.Writer, opts clickhouse.ClientOptions, version string, node ast.Node, mode inputMode) error {
	// The server explains a SELECT list, so a lone expression is wrapped in
	// one. Its output always uses one space per level.
	list, ok := node.(*ast.ExpressionList)
	if !ok {
		list = &ast.ExpressionList{Loc: node.Span(), Elements: []ast.Node{node}}
	}

	var ours strings.Builder
	if err := format.NewDefault().Explain(&ours, list); err != nil {
		return err
	}

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	checkServerVersion(ctx, client, version)

	sql := format.NewDefault().Node(list)
	var theirs string
	if mode == modeOrderBy {
		theirs, err = client.ExplainOrderBy(ctx, sql)
	} else {
		theirs, err = client.ExplainAST(ctx, sql)
	}
	if err != nil {
		return err
	}

	diff, err := clickhouse.Diff(ours.String(), theirs)
	if err != nil {
		return err
	}

	if diff == "" {
		_, err = fmt.Fprint(w, ours.String())
		return errors.Wrap(err, "failed to write EXPLAIN output")
	}

	if _, err := fmt.Fprint(w, diff); err != nil {
		return errors.Wrap(err, "failed to write diff")
	}
	return errors.New("EXPLAIN AST differs from ClickHouse")
}

// checkServerVersion warns when the server is older than the version the
// config says the output should match.
func checkServerVersion(ctx context.Context, client explainer, want string) {
	if want == "" {
		return
	}

	expected, err := clickhouse.ParseVersion(want)
	if err != nil {
		slog.Warn("Ignoring invalid clickhouse.version", "version", want, "err", err)
		return
	}

	server, err := client.GetVersion(ctx)
	if err != nil {
		slog.Warn("Unable to determine ClickHouse version", "err", err)
		return
	}

	if !server.IsAtLeast(expected.Major, expected.Minor) {
		slog.Warn("ClickHouse server is older than the configured version",
			"server", server.String(),
			"configured", want,
		)
	}
}
