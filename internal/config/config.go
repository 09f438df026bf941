// Package config loads CLI settings from flags, environment and an optional file.
package config

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sartorproj/tempseries/timeseries"
	"github.com/spf13/viper"
)

const envPrefix = "TEMPSERIES"

// Keys understood by Load.
const (
	KeyLogLevel     = "log.level"
	KeyOutputFormat = "output.format"
	KeyValueColumn  = "input.value_column"
	KeyHasHeader    = "input.has_header"
	KeyDelimiter    = "input.delimiter"
	KeySkipRows     = "input.skip_rows"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the resolved CLI settings.
type Config struct {
	LogLevel string
	Format   string
	Input    timeseries.ReadOptions
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyOutputFormat, FormatText)
	v.SetDefault(KeyValueColumn, "value")
	v.SetDefault(KeyHasHeader, true)
	v.SetDefault(KeyDelimiter, ",")
	v.SetDefault(KeySkipRows, 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if one is given, and resolves the settings held by v.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
	}

	cfg := &Config{
		LogLevel: v.GetString(KeyLogLevel),
		Format:   strings.ToLower(v.GetString(KeyOutputFormat)),
		Input: timeseries.ReadOptions{
			ValueColumn: v.GetString(KeyValueColumn),
			HasHeader:   v.GetBool(KeyHasHeader),
			SkipRows:    v.GetInt(KeySkipRows),
		},
	}

	delim := v.GetString(KeyDelimiter)
	if delim == `\t` {
		delim = "\t"
	}
	if utf8.RuneCountInString(delim) != 1 {
		return nil, errors.Errorf("delimiter must be a single character, got %q", delim)
	}
	cfg.Input.Delimiter, _ = utf8.DecodeRuneInString(delim)

	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return nil, errors.Errorf("unknown output format %q", cfg.Format)
	}
	if cfg.Input.SkipRows < 0 {
		return nil, errors.Errorf("skip_rows must not be negative, got %d", cfg.Input.SkipRows)
	}

	return cfg, nil
}
