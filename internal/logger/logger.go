// CLASSIFICATION: COMMUNITY
// Filename: logger.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package logger builds the slog loggers used by guidebug.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phsym/console-slog"
)

// Format selects the slog handler.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatNone    Format = "none"
)

// Config describes a logger.
type Config struct {
	Level       slog.Level
	Format      Format
	Destination io.Writer
	Color       bool
}

// ConfigDefault logs at info level to stderr through console-slog.
func ConfigDefault() Config {
	return Config{
		Level:       slog.LevelInfo,
		Format:      FormatConsole,
		Destination: os.Stderr,
		Color:       true,
	}
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	l, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %q", s)
	}
	return l, nil
}

// ParseFormat accepts console, json and none in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatConsole, FormatJSON, FormatNone:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format: %q", s)
	}
}

// New returns a logger for cfg.
func New(cfg Config) (*slog.Logger, error) {
	if cfg.Destination == nil {
		cfg.Destination = os.Stderr
	}
	var handler slog.Handler
	switch cfg.Format {
	case FormatConsole, "":
		handler = console.NewHandler(cfg.Destination, &console.HandlerOptions{
			Level:   cfg.Level,
			NoColor: !cfg.Color,
		})
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Destination, &slog.HandlerOptions{Level: cfg.Level})
	case FormatNone:
		handler = slog.NewTextHandler(io.Discard, nil)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", cfg.Format)
	}
	return slog.New(handler), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ctxKey struct{}

// WithContext stores l on ctx.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger stored on ctx, or a discarding logger.
func From(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return Discard()
	}
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return Discard()
}
