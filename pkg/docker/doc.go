// Package docker runs a disposable ClickHouse server with testcontainers.
//
// It backs the opt-in integration tests that compare chexpr's EXPLAIN output
// with the server's own:
//
//	container := docker.New(docker.Options{Version: "25.7"})
//	if err := container.Start(ctx); err != nil {
//		return err
//	}
//	defer container.Stop(ctx)
//
//	dsn, err := container.GetDSN(ctx)
//	if err != nil {
//		return err
//	}
//
//	client, err := clickhouse.NewClient(ctx, dsn)
package docker
