package consts

import "os"

const (
	// ModeFile is the standard file mode for files written by the CLI.
	ModeFile = os.FileMode(0o644)

	// DefaultMaxDepth is the deepest expression nesting the parser accepts.
	DefaultMaxDepth = 1000

	// DefaultMaxQuerySize is the largest input, in bytes, the parser accepts.
	DefaultMaxQuerySize = 256 * 1024

	// DefaultConfigFile is read from the working directory when no --config
	// flag or CHEXPR_CONFIG variable is given.
	DefaultConfigFile = "chexpr.yaml"

	// ConfigEnvVar names the environment variable holding the config path.
	ConfigEnvVar = "CHEXPR_CONFIG"

	// DefaultClickHouseDSN is used by explain --compare.
	DefaultClickHouseDSN = "localhost:9000"

	// DefaultClickHouseVersion is the image tag used for integration tests.
	DefaultClickHouseVersion = "25.7"

	// DefaultIndentSize is the indent used for EXPLAIN AST output.
	DefaultIndentSize = 1
)
