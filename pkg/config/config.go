package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chexpr/pkg/clickhouse"
	"github.com/pseudomuto/chexpr/pkg/consts"
	"github.com/pseudomuto/chexpr/pkg/format"
	"github.com/pseudomuto/chexpr/pkg/parser"
	"gopkg.in/yaml.v3"
)

type (
	// Parser holds the limits applied to every parse.
	Parser struct {
		// MaxDepth bounds how deeply expressions may nest. An explicit zero
		// disables the limit; leaving it out uses consts.DefaultMaxDepth.
		MaxDepth *int `yaml:"max_depth,omitempty"`

		// MaxQuerySize bounds the input size in bytes. An explicit zero
		// disables the limit; leaving it out uses consts.DefaultMaxQuerySize.
		MaxQuerySize *int `yaml:"max_query_size,omitempty"`
	}

	// Format controls how expressions are printed.
	Format struct {
		// UppercaseKeywords prints AS, NULL, AND, ... in upper case. Defaults to
		// true.
		UppercaseKeywords *bool `yaml:"uppercase_keywords,omitempty"`

		// IndentSize is the number of spaces per level in EXPLAIN output.
		IndentSize int `yaml:"indent_size,omitempty"`
	}

	// ClickHouse holds the connection used by explain --compare.
	ClickHouse struct {
		// DSN is a host:port or clickhouse:// URL for the native protocol.
		DSN string `yaml:"dsn,omitempty"`

		// Version is the server version the output is expected to match.
		Version string `yaml:"version,omitempty"`

		TLS TLS `yaml:"tls,omitempty"`
	}

	// TLS enables mutual TLS when CertFile is set.
	TLS struct {
		CertFile string `yaml:"cert_file,omitempty"`
		KeyFile  string `yaml:"key_file,omitempty"`
		CAFile   string `yaml:"ca_file,omitempty"`
	}

	// Config is the contents of chexpr.yaml.
	Config struct {
		Parser     Parser     `yaml:"parser"`
		Format     Format     `yaml:"format"`
		ClickHouse ClickHouse `yaml:"clickhouse"`
	}
)

// Default returns a Config with every value set to its default.
func Default() *Config {
	cfg := new(Config)
	cfg.setDefaults()
	return cfg
}

// LoadConfig parses a YAML configuration from r. Values that are missing are
// filled in from the defaults in pkg/consts.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	parser:
//	  max_depth: 200
//	clickhouse:
//	  dsn: clickhouse.internal:9000
//	`))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(*cfg.Parser.MaxDepth, *cfg.Parser.MaxQuerySize) // 200 262144
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Parser.maxDepth() < 0 || cfg.Parser.maxQuerySize() < 0 || cfg.Format.IndentSize < 0 {
		return nil, errors.New("parser limits and indent_size must not be negative")
	}

	cfg.setDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	slog.Debug("Loading config", "path", path)
	return LoadConfig(f)
}

// LoadConfigFileOrDefault is LoadConfigFile, except that a missing file
// yields the default configuration.
func LoadConfigFileOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("Config file not found, using defaults", "path", path)
		return Default(), nil
	}

	return LoadConfigFile(path)
}

// Path returns the config file named by CHEXPR_CONFIG, or chexpr.yaml.
func Path() string {
	if p := os.Getenv(consts.ConfigEnvVar); p != "" {
		return p
	}
	return consts.DefaultConfigFile
}

// GetParser returns a parser engine using the configured limits.
func (c *Config) GetParser(opts ...parser.Option) *parser.Engine {
	base := []parser.Option{
		parser.WithMaxDepth(c.Parser.maxDepth()),
		parser.WithMaxQuerySize(c.Parser.maxQuerySize()),
	}
	return parser.New(append(base, opts...)...)
}

// GetClientOptions returns the connection settings for explain --compare.
func (c *Config) GetClientOptions() clickhouse.ClientOptions {
	return clickhouse.ClientOptions{
		DSN: c.ClickHouse.DSN,
		TLSSettings: clickhouse.TLSSettings{
			CertFile: c.ClickHouse.TLS.CertFile,
			KeyFile:  c.ClickHouse.TLS.KeyFile,
			CAFile:   c.ClickHouse.TLS.CAFile,
		},
	}
}

// GetFormatter returns a formatter using the configured options.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(format.FormatterOptions{
		IndentSize:        c.Format.IndentSize,
		UppercaseKeywords: c.Format.uppercase(),
	})
}

func (p Parser) maxDepth() int {
	if p.MaxDepth == nil {
		return consts.DefaultMaxDepth
	}
	return *p.MaxDepth
}

func (p Parser) maxQuerySize() int {
	if p.MaxQuerySize == nil {
		return consts.DefaultMaxQuerySize
	}
	return *p.MaxQuerySize
}

func (f Format) uppercase() bool {
	return f.UppercaseKeywords == nil || *f.UppercaseKeywords
}

func (c *Config) setDefaults() {
	if c.Parser.MaxDepth == nil {
		depth := consts.DefaultMaxDepth
		c.Parser.MaxDepth = &depth
	}
	if c.Parser.MaxQuerySize == nil {
		size := consts.DefaultMaxQuerySize
		c.Parser.MaxQuerySize = &size
	}
	if c.Format.UppercaseKeywords == nil {
		upper := true
		c.Format.UppercaseKeywords = &upper
	}
	if c.Format.IndentSize == 0 {
		c.Format.IndentSize = consts.DefaultIndentSize
	}
	if c.ClickHouse.DSN == "" {
		c.ClickHouse.DSN = consts.DefaultClickHouseDSN
	}
	if c.ClickHouse.Version == "" {
		c.ClickHouse.Version = consts.DefaultClickHouseVersion
	}
}
