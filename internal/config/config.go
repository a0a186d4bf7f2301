// Package config loads CLI configuration via spf13/viper and
// spf13/pflag, replacing the teacher's hand-rolled JSON settings store
// with flag > env > config-file > default precedence (§6 Environment).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings every pipeline stage and CLI command reads.
type Config struct {
	// DataDir is where PC pipeline artifacts are read/written (§6).
	DataDir string
	// Workers is the worker-pool size for C9's graph explorer. The C10
	// pruner runs single-threaded and does not read it.
	Workers int
	// Seed seeds the default 7-bag when a command doesn't take an
	// explicit one.
	Seed uint64
}

const envPrefix = "TETRIS"

// Load resolves Config from flags registered on fs, environment
// variables prefixed TETRIS_, a config file at
// ~/.tetris-ai/config.yaml, and built-in defaults, in that precedence
// order. Call after fs.Parse.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	v.SetDefault("data_dir", "./data/")
	v.SetDefault("workers", 4)
	v.SetDefault("seed", uint64(0))

	if err := v.BindEnv("data_dir", "DATA_DIR"); err != nil {
		return Config{}, fmt.Errorf("config: bind DATA_DIR: %w", err)
	}
	if err := v.BindEnv("workers"); err != nil {
		return Config{}, fmt.Errorf("config: bind workers: %w", err)
	}
	if err := v.BindEnv("seed"); err != nil {
		return Config{}, fmt.Errorf("config: bind seed: %w", err)
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".tetris-ai"))
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	return Config{
		DataDir: v.GetString("data_dir"),
		Workers: v.GetInt("workers"),
		Seed:    v.GetUint64("seed"),
	}, nil
}

// RegisterFlags adds the flags Load understands to fs, for commands
// that want --data_dir/--workers/--seed overrides.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("data_dir", "./data/", "directory for PC pipeline artifacts")
	fs.Int("workers", 4, "worker pool size for the PC graph explorer")
	fs.Uint64("seed", 0, "default 7-bag seed")
}
