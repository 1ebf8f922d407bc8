package main

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/theflywheel/ohash"
)

// Config is the wordcount configuration file.
//
//	[table]
//	size = 7
//	max_load_factor = 0.5
//
//	[input]
//	files = ["theEgg.txt"]
//	encoder = "base27"
//	reduce_keys = false
//	presize = false
//	workers = 4
//
//	[log]
//	level = "info"
type Config struct {
	Table ohash.Config `toml:"table"`
	Input InputConfig  `toml:"input"`
	Log   LogConfig    `toml:"log"`
}

type InputConfig struct {
	Files      []string `toml:"files"`
	Encoder    string   `toml:"encoder"`
	ReduceKeys bool     `toml:"reduce_keys"`
	Presize    bool     `toml:"presize"`
	Workers    int      `toml:"workers"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func defaultConfig() Config {
	return Config{
		Table: ohash.DefaultConfig(),
		Input: InputConfig{Encoder: "base27", Workers: 4},
		Log:   LogConfig{Level: "info"},
	}
}

// loadConfig decodes path over the defaults. Unknown keys are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Newf("config %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}
