// Package config loads runtime settings from a YAML file, the environment
// and built-in defaults, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/ottomeasure/internal/logger"
	"github.com/hammamikhairi/ottomeasure/internal/measure"
)

// EnvPrefix is prepended to every environment override, e.g.
// OTTOMEASURE_LOG_LEVEL.
const EnvPrefix = "OTTOMEASURE"

// Config mirrors the on-disk configuration file.
type Config struct {
	Log    LogConfig `mapstructure:"log"`
	Plural string    `mapstructure:"plural"`
}

// LogConfig controls where and how much the application logs.
type LogConfig struct {
	// Level is one of off, normal, verbose.
	Level string `mapstructure:"level"`
	// File is a path, or "stderr" to log to the console.
	File string `mapstructure:"file"`
}

// Settings is a validated Config.
type Settings struct {
	LogLevel logger.Level
	LogFile  string
	Plural   measure.PluralPolicy
	// Source is the config file that was read, empty if none.
	Source string
}

// Load reads configuration. If file is empty, ottomeasure.yaml is looked
// up in the working directory and ~/.config/ottomeasure; a missing file
// is not an error. An explicit file must exist.
func Load(file string) (Settings, error) {
	v := viper.New()
	v.SetDefault("log.level", "normal")
	v.SetDefault("log.file", "stderr")
	v.SetDefault("plural", "source")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("ottomeasure")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ottomeasure"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg.validate(v.ConfigFileUsed())
}

func (c Config) validate(source string) (Settings, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return Settings{}, fmt.Errorf("log.level: %w", err)
	}
	plural, err := measure.ParsePluralPolicy(c.Plural)
	if err != nil {
		return Settings{}, fmt.Errorf("plural: %w", err)
	}
	return Settings{
		LogLevel: level,
		LogFile:  c.Log.File,
		Plural:   plural,
		Source:   source,
	}, nil
}
