package config

import (
	"go.uber.org/fx"
)

// Module provides the *Config read from Path(). A missing file is not an
// error; commands run with the defaults.
var Module = fx.Module("config", fx.Provide(
	func() (*Config, error) {
		return LoadConfigFileOrDefault(Path())
	},
))
