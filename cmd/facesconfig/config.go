package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jacoelho/facesconfig/pkg/version"
)

const (
	keyLogLevel       = "log-level"
	keyUndoLimit      = "undo-limit"
	keyPermissive     = "permissive"
	keyDefaultVersion = "default-version"

	defaultLogLevel = "warn"
	configName      = "facesconfig"
	envPrefix       = "FACESCONFIG"
)

// config is the resolved CLI configuration. Precedence, highest first:
// flags, FACESCONFIG_* environment variables, the config file, defaults.
type config struct {
	LogLevel       string `mapstructure:"log-level"`
	UndoLimit      int    `mapstructure:"undo-limit"`
	Permissive     bool   `mapstructure:"permissive"`
	DefaultVersion string `mapstructure:"default-version"`

	source string
}

func loadConfig(path string, logLevel *pflag.Flag) (config, error) {
	v := viper.New()
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyUndoLimit, 100)
	v.SetDefault(keyPermissive, false)
	v.SetDefault(keyDefaultVersion, version.Latest.String())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if logLevel != nil {
		if err := v.BindPFlag(keyLogLevel, logLevel); err != nil {
			return config{}, fmt.Errorf("bind %s flag: %w", keyLogLevel, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.source = v.ConfigFileUsed()
	if cfg.UndoLimit < 0 {
		return config{}, fmt.Errorf("%s must be >= 0, got %d", keyUndoLimit, cfg.UndoLimit)
	}
	if _, err := version.Parse(cfg.DefaultVersion); err != nil {
		return config{}, fmt.Errorf("%s: %w", keyDefaultVersion, err)
	}
	return cfg, nil
}
