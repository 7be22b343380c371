// CLASSIFICATION: COMMUNITY
// Filename: config.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package config resolves guidebug settings from flags, GUIDEBUG_* env vars
// and an optional guidebug.yaml, once at startup.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"guidebug/debugger/files"
	"guidebug/internal/logger"
)

// Keys shared by flags, env and the config file.
const (
	KeyDir       = "dir"
	KeySuffix    = "suffix"
	KeyBind      = "bind"
	KeyPort      = "port"
	KeyGRPCPort  = "grpc_port"
	KeyLogFile   = "log_file"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyRateLimit = "rate_limit"
	KeyRateBurst = "rate_burst"
)

// Config holds the resolved settings.
type Config struct {
	Dir       string
	Suffix    string
	Bind      string
	Port      int
	GRPCPort  int
	LogFile   string
	LogLevel  string
	LogFormat string
	RateLimit float64
	RateBurst int
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySuffix, files.DefaultSuffix)
	v.SetDefault(KeyBind, "127.0.0.1")
	v.SetDefault(KeyPort, 8888)
	v.SetDefault(KeyGRPCPort, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, string(logger.FormatConsole))
	v.SetDefault(KeyRateBurst, 10)

	// E.g. GUIDEBUG_DIR=/tmp/debugger
	v.SetEnvPrefix("guidebug")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags registers the server flags on fs and binds them to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("dir", "", "directory to list (default $HOME/470/gui_debugger)")
	fs.String("suffix", files.DefaultSuffix, "literal filename suffix to match")
	fs.String("bind", "127.0.0.1", "bind address")
	fs.Int("port", 8888, "listen port")
	fs.Int("grpc-port", 0, "gRPC health port, 0 disables")
	fs.String("log-file", "", "access log file")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", string(logger.FormatConsole), "log format: console, json, none")
	fs.Float64("rate-limit", 0, "API requests per second, 0 disables")
	fs.Int("rate-burst", 10, "API burst size when rate limiting")

	for key, flag := range map[string]string{
		KeyDir:       "dir",
		KeySuffix:    "suffix",
		KeyBind:      "bind",
		KeyPort:      "port",
		KeyGRPCPort:  "grpc-port",
		KeyLogFile:   "log-file",
		KeyLogLevel:  "log-level",
		KeyLogFormat: "log-format",
		KeyRateLimit: "rate-limit",
		KeyRateBurst: "rate-burst",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// ReadFile loads path, or guidebug.yaml from . or $HOME/.guidebug when path
// is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.guidebug")
		v.SetConfigName("guidebug")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load resolves v into a Config. An empty dir falls back to files.DefaultDir.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Dir:       v.GetString(KeyDir),
		Suffix:    v.GetString(KeySuffix),
		Bind:      v.GetString(KeyBind),
		Port:      v.GetInt(KeyPort),
		GRPCPort:  v.GetInt(KeyGRPCPort),
		LogFile:   v.GetString(KeyLogFile),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		RateLimit: v.GetFloat64(KeyRateLimit),
		RateBurst: v.GetInt(KeyRateBurst),
	}
	if cfg.Dir == "" {
		dir, err := files.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolve default directory: %w", err)
		}
		cfg.Dir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Suffix == "" {
		return fmt.Errorf("suffix must not be empty")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("grpc port must be between 0 and 65535")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("rate burst must be at least 1 when rate limiting")
	}
	return nil
}
