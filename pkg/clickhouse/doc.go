// Package clickhouse talks to a ClickHouse server to cross-check chexpr.
//
// The server is the reference implementation of the expression grammar, so
// the client asks it for EXPLAIN AST of the same text chexpr parsed and the
// two trees can be diffed with Diff:
//
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	theirs, err := client.ExplainAST(ctx, "sum(x) AS total")
//	if err != nil {
//		return err
//	}
//
//	diff, err := clickhouse.Diff(ours, theirs)
//
// Connections use the native protocol. A DSN is either host:port or a
// clickhouse:// URL, and TLSSettings enables mutual TLS.
package clickhouse
