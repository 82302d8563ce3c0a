package config

import (
	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Log      LogConfigs      `toml:"log"`
	Reaction ReactionConfigs `toml:"reaction"`
	Metrics  MetricsConfigs  `toml:"metrics"`
}

type LogConfigs struct {
	Level string `toml:"level"`
}

type ReactionConfigs struct {
	// QuietUnknownTags logs unknown wire constructors at debug level instead of
	// warning. The counter is incremented either way.
	QuietUnknownTags bool `toml:"quiet_unknown_tags"`
}

type MetricsConfigs struct {
	// TextfilePath is where the CLI dumps its counters after a run. Empty
	// disables the dump.
	TextfilePath string `toml:"textfile_path"`
}

func Default() Configs {
	return Configs{
		Env: "local",
		Log: LogConfigs{Level: "info"},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}
