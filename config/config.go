// Package config loads tpsolve's command-line settings.
//
// Sources, lowest precedence first: built-in defaults, a config file,
// TPSOLVE_* environment variables and explicitly set command-line flags.
// The merged result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TPSOLVE_LOG_LEVEL.
const EnvPrefix = "TPSOLVE"

// Output formats understood by the report package.
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid settings")

// Config is the merged settings tree.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Wizard WizardConfig `mapstructure:"wizard"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level       string `mapstructure:"level"       validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

// OutputConfig controls how solutions are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=table text yaml json"`
	Color  bool   `mapstructure:"color"`
}

// WizardConfig holds the interactive wizard's starting dimensions.
type WizardConfig struct {
	Rows   int `mapstructure:"rows"    validate:"min=1,ltefield=MaxDim"`
	Cols   int `mapstructure:"cols"    validate:"min=1,ltefield=MaxDim"`
	MaxDim int `mapstructure:"max_dim" validate:"min=1,max=50"`
}

// flagKeys maps command-line flag names onto settings keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"format":    "output.format",
	"rows":      "wizard.rows",
	"cols":      "wizard.cols",
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Format: FormatTable, Color: true},
		Wizard: WizardConfig{Rows: 3, Cols: 3, MaxDim: 12},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("wizard.rows", d.Wizard.Rows)
	v.SetDefault("wizard.cols", d.Wizard.Cols)
	v.SetDefault("wizard.max_dim", d.Wizard.MaxDim)
}

// Load merges all sources. An explicit path must exist; without one,
// tpsolve.{yaml,json,toml} is looked up in the working directory and in
// $HOME/.config/tpsolve, and its absence is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tpsolve")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tpsolve"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	conf.File = v.ConfigFileUsed()
	conf.Output.Format = strings.ToLower(conf.Output.Format)
	conf.Log.Level = strings.ToLower(conf.Log.Level)

	if err := validator.New().Struct(conf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &conf, nil
}
