// SPDX-License-Identifier: MIT
//
// Package config resolves the runtime configuration of the lvroute command:
// built-in defaults, then an optional YAML config file, then LVROUTE_*
// environment variables, then command-line flags.
//
// Keys:
//
//	graph                path of a network definition file ("" = embedded sample)
//	strategy             linear | heap | ordered
//	format               text | table | yaml
//	log_level            debug | info | warn | error
//	log_format           text | json
//	limits.id_length     exact identifier length
//	limits.max_nodes     node capacity
//	limits.max_neighbors per-node neighbor capacity
//	limits.max_weight    largest admissible weight
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/report"
	"github.com/katalvlaran/lvroute/store"
)

// EnvPrefix prefixes environment overrides: LVROUTE_LIMITS_MAX_NODES etc.
const EnvPrefix = "LVROUTE"

// ConfigName is the file searched for in the working and home directories
// when no explicit config file is given.
const ConfigName = ".lvroute"

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Graph     string       `mapstructure:"graph"`
	Strategy  string       `mapstructure:"strategy"`
	Format    string       `mapstructure:"format"`
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	Limits    store.Limits `mapstructure:"limits"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"graph":         "graph",
	"strategy":      "strategy",
	"format":        "format",
	"log-level":     "log_level",
	"log-format":    "log_format",
	"id-length":     "limits.id_length",
	"max-nodes":     "limits.max_nodes",
	"max-neighbors": "limits.max_neighbors",
	"max-weight":    "limits.max_weight",
}

// NewViper returns a viper instance carrying the defaults and the
// environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	limits := store.DefaultLimits()
	v.SetDefault("graph", "")
	v.SetDefault("strategy", dijkstra.StrategyLinear.String())
	v.SetDefault("format", string(report.FormatText))
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("limits.id_length", limits.IDLength)
	v.SetDefault("limits.max_nodes", limits.MaxNodes)
	v.SetDefault("limits.max_neighbors", limits.MaxNeighbors)
	v.SetDefault("limits.max_weight", limits.MaxWeight)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds every known flag present in fs to its configuration key.
// Flags missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}

	return nil
}

// Overrides returns the limits given explicitly by a changed flag in fs, an
// LVROUTE_* environment variable or the config file read into v. Fields
// left at their built-in default are zero, so the result can be merged
// over limits from a network definition with store.Limits.Merge.
func Overrides(v *viper.Viper, fs *pflag.FlagSet) store.Limits {
	var o store.Limits
	if explicit(v, fs, "limits.id_length") {
		o.IDLength = v.GetInt("limits.id_length")
	}
	if explicit(v, fs, "limits.max_nodes") {
		o.MaxNodes = v.GetInt("limits.max_nodes")
	}
	if explicit(v, fs, "limits.max_neighbors") {
		o.MaxNeighbors = v.GetInt("limits.max_neighbors")
	}
	if explicit(v, fs, "limits.max_weight") {
		o.MaxWeight = v.GetInt64("limits.max_weight")
	}

	return o
}

// explicit reports whether key was set by anything other than its default.
func explicit(v *viper.Viper, fs *pflag.FlagSet, key string) bool {
	for name, k := range flagKeys {
		if k == key && fs != nil && fs.Changed(name) {
			return true
		}
	}
	env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(env); ok {
		return true
	}

	return v.InConfig(key)
}

// Load reads the config file (file, or ConfigName in the working and home
// directories when file is empty) into v, then decodes and validates the
// result. A missing ConfigName file is not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every enumerated value and the limits.
func (c Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.StrategyValue(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.FormatValue(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// StrategyValue parses Strategy.
func (c Config) StrategyValue() (dijkstra.Strategy, error) {
	return dijkstra.ParseStrategy(c.Strategy)
}

// FormatValue parses Format.
func (c Config) FormatValue() (report.Format, error) {
	return report.ParseFormat(c.Format)
}
