// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides a standardized logger construction for all caseflow components.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config defines logging settings.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the log output format (json, text).
	Format string
	// AddSource includes source file and line number in log entries.
	AddSource bool
}

// New creates a configured slog.Logger from the config.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// parseLevel converts the level string to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
