package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/config"
	"github.com/pseudomuto/chexpr/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the chexpr CLI to run once the fx application starts and shuts
// the application down with the command's exit status.
//
// Global Flags:
//   - --config, -c: Config file (env CHEXPR_CONFIG, default chexpr.yaml)
//
// Example usage:
//
//	chexpr parse 'quantile(0.9)(latency) AS p90'
//	chexpr -c ci.yaml explain --compare --dsn localhost:9000 'a + 1'
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Config, p.Version.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(cfg *config.Config, version string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "chexpr",
		Usage: "Parse, format and explain ClickHouse expressions",
		Description: `chexpr parses ClickHouse expressions (literals, identifiers, function
calls, arrays, tuples, subqueries and ORDER BY elements) and prints their
syntax tree, canonical SQL or ClickHouse-style EXPLAIN AST.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the chexpr config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			// The fx-provided config was loaded from the environment or the
			// default path; an explicit flag replaces it.
			if !cmd.IsSet("config") {
				return ctx, nil
			}

			loaded, err := config.LoadConfigFile(cmd.String("config"))
			if err != nil {
				return ctx, errors.Wrap(err, "failed to load config")
			}

			*cfg = *loaded
			return ctx, nil
		},
		Commands: commands,
	}
}
