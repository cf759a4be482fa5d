package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full server configuration. Every key has a default, so the
// server starts with no config file at all; a masterblog.yaml next to the
// binary or MASTERBLOG_* environment variables override the defaults.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Schema  string        `mapstructure:"schema"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`
}

// StorageConfig selects the post backend. Driver is one of "file", "memory"
// or "sqlite"; Path and SQLitePath locate the file and sqlite stores.
type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	Path       string `mapstructure:"path"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load reads configuration from the file at path, or from masterblog.yaml in
// the working directory when path is empty. A missing default file is not an
// error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 5002)
	v.SetDefault("server.debug", false)
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", "storage.json")
	v.SetDefault("storage.sqlite_path", "masterblog.db")
	v.SetDefault("schema", "extended")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("MASTERBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("masterblog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
