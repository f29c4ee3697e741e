package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/consts"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	httpPort     = nat.Port("8123/tcp")
	startTimeout = 5 * time.Minute
)

type (
	// Options configures the ClickHouse container.
	Options struct {
		// Version is the clickhouse-server image tag. Defaults to
		// consts.DefaultClickHouseVersion.
		Version string
	}

	// Container is a throwaway ClickHouse server used to cross-check parser
	// output against the real thing.
	Container struct {
		options   Options
		container *clickhouse.ClickHouseContainer
	}
)

// New returns a stopped container for the given options.
//
// Example:
//
//	container := docker.New(docker.Options{Version: "25.7"})
//	if err := container.Start(ctx); err != nil {
//		return err
//	}
//	defer container.Stop(ctx)
//
//	dsn, err := container.GetDSN(ctx)
func New(opts Options) *Container {
	if opts.Version == "" {
		opts.Version = consts.DefaultClickHouseVersion
	}
	return &Container{options: opts}
}

// Image returns the image reference the container runs.
func (c *Container) Image() string {
	return fmt.Sprintf("clickhouse/clickhouse-server:%s-alpine", c.options.Version)
}

// Start pulls the image if needed and waits for the HTTP interface to answer.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	ch, err := clickhouse.Run(ctx, c.Image(),
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		// Nothing written by the server needs to outlive the container.
		testcontainers.WithHostConfigModifier(func(hc *container.HostConfig) {
			hc.Tmpfs = map[string]string{"/var/lib/clickhouse": "rw"}
		}),
		testcontainers.WithWaitStrategyAndDeadline(
			startTimeout,
			wait.NewHTTPStrategy("/").
				WithPort(httpPort).
				WithStatusCodeMatcher(func(status int) bool { return status == 200 }),
		),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to start %s", c.Image())
	}

	c.container = ch
	return nil
}

// Stop terminates the container. Stopping a stopped container is a no-op.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	return errors.Wrap(err, "failed to stop ClickHouse container")
}

// GetDSN returns a clickhouse:// URL for the native protocol port.
func (c *Container) GetDSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	dsn, err := c.container.ConnectionString(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// GetHTTPDSN returns the base URL of the HTTP interface.
func (c *Container) GetHTTPDSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	host, err := c.container.Host(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get container host")
	}

	port, err := c.container.MappedPort(ctx, httpPort)
	if err != nil {
		return "", errors.Wrap(err, "failed to get container port")
	}

	return fmt.Sprintf("http://%s:%s", host, port.Port()), nil
}

func (c *Container) IsRunning() bool {
	return c.container != nil
}
