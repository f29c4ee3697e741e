package cmd

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/clickhouse"
	"github.com/pseudomuto/chexpr/pkg/config"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	explain string
	version string
	opts    clickhouse.ClientOptions
	query   string
	orderBy bool
	closed  bool
}

func (f *fakeServer) ExplainAST(ctx context.Context, exprs string) (string, error) {
	f.query = exprs
	return f.explain, nil
}

func (f *fakeServer) ExplainOrderBy(ctx context.Context, orderBy string) (string, error) {
	f.query = orderBy
	f.orderBy = true
	return f.explain, nil
}

func (f *fakeServer) GetVersion(ctx context.Context) (*clickhouse.VersionInfo, error) {
	return clickhouse.ParseVersion(f.version)
}

func (f *fakeServer) Close() error {
	f.closed = true
	return nil
}

// useServer points explain --compare at server for the rest of the test.
func useServer(t *testing.T, server *fakeServer) {
	t.Helper()

	orig := connect
	connect = func(ctx context.Context, opts clickhouse.ClientOptions) (explainer, error) {
		server.opts = opts
		return server, nil
	}
	t.Cleanup(func() { connect = orig })
}

const arithmeticExplain = `ExpressionList (children 1)
 Function plus (alias total) (children 1)
  ExpressionList (children 2)
   Identifier a
   Function multiply (children 1)
    ExpressionList (children 2)
     Identifier b
     Literal UInt64_2
`

func TestExplainCommand(t *testing.T) {
	command := explainCmd(config.Default())

	t.Run("expression", func(t *testing.T) {
		out, err := runCommand(t, command, "", "f(x)(y)")
		require.NoError(t, err)
		require.Equal(t, `Function f (children 2)
 ExpressionList (children 1)
  Identifier y
 ExpressionList (children 1)
  Identifier x
`, out)
	})

	t.Run("list", func(t *testing.T) {
		out, err := runCommand(t, command, "", "--list", "a + b * 2 AS total")
		require.NoError(t, err)
		require.Equal(t, arithmeticExplain, out)
	})

	t.Run("order by", func(t *testing.T) {
		out, err := runCommand(t, command, "", "--order-by", "x DESC")
		require.NoError(t, err)
		require.Equal(t, "ExpressionList (children 1)\n OrderByElement (children 1)\n  Identifier x\n", out)
	})

	t.Run("configured indent", func(t *testing.T) {
		cfg := config.Default()
		cfg.Format.IndentSize = 2

		out, err := runCommand(t, explainCmd(cfg), "", "g(1)")
		require.NoError(t, err)
		require.Equal(t, "Function g (children 1)\n  ExpressionList (children 1)\n    Literal UInt64_1\n", out)
	})
}

func TestExplainCommand_Compare(t *testing.T) {
	t.Run("matching output", func(t *testing.T) {
		server := &fakeServer{explain: arithmeticExplain, version: "25.7.1.3"}
		useServer(t, server)

		cfg := config.Default()
		cfg.Format.IndentSize = 4

		out, err := runCommand(t, explainCmd(cfg), "", "--compare", "a+b*2 AS total")
		require.NoError(t, err)
		require.Equal(t, arithmeticExplain, out)
		require.Equal(t, "(a + (b * 2)) AS total", server.query)
		require.Equal(t, cfg.ClickHouse.DSN, server.opts.DSN)
		require.True(t, server.closed)
	})

	t.Run("different output", func(t *testing.T) {
		server := &fakeServer{explain: "ExpressionList (children 1)\n Literal Int64_1\n", version: "24.3"}
		useServer(t, server)

		out, err := runCommand(t, explainCmd(config.Default()), "", "--compare", "--dsn", "ch:9000", "1")
		require.EqualError(t, err, "EXPLAIN AST differs from ClickHouse")
		require.Contains(t, out, "--- chexpr\n+++ clickhouse\n")
		require.Contains(t, out, "- Literal UInt64_1\n")
		require.Contains(t, out, "+ Literal Int64_1\n")
		require.Equal(t, "ch:9000", server.opts.DSN)
	})

	t.Run("order by", func(t *testing.T) {
		server := &fakeServer{
			explain: "ExpressionList (children 1)\n OrderByElement (children 1)\n  Identifier x\n",
			version: "25.7",
		}
		useServer(t, server)

		_, err := runCommand(t, explainCmd(config.Default()), "", "--order-by", "--compare", "x desc")
		require.NoError(t, err)
		require.True(t, server.orderBy)
		require.Equal(t, "x DESC", server.query)
	})

	t.Run("connection failure", func(t *testing.T) {
		orig := connect
		connect = func(ctx context.Context, opts clickhouse.ClientOptions) (explainer, error) {
			return nil, errors.New("connection refused")
		}
		t.Cleanup(func() { connect = orig })

		_, err := runCommand(t, explainCmd(config.Default()), "", "--compare", "a")
		require.EqualError(t, err, "connection refused")
	})
}
