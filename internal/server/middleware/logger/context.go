// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package logger provides request-scoped logging middleware.
package logger

import (
	"context"
	"log/slog"
)

// contextKey is the type for context keys to avoid collisions.
type contextKey struct{}

var loggerKey = contextKey{}

// WithLogger returns a new context carrying the request logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger retrieves the request logger from context.
// Returns slog.Default() if no logger is attached.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
