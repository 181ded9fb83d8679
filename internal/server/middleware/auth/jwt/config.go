// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the configuration for JWT authentication middleware
type Config struct {
	// Disabled disables JWT authentication when set to true
	// When disabled, the middleware will pass through all requests without authentication
	// This is useful for local development or testing environments
	// Default: false
	Disabled bool

	// Optional makes authentication best-effort: requests without a token, or
	// with a token that fails validation, pass through without claims instead
	// of being rejected. Handlers can then treat the caller as anonymous.
	// Default: false
	Optional bool

	// SigningKey is the key used to verify token signatures
	// For HMAC algorithms (HS256, HS384, HS512), this should be a []byte
	// For RSA algorithms (RS256, RS384, RS512), this should be a *rsa.PublicKey
	SigningKey interface{}

	// TokenLookup defines where to extract the JWT token from the request
	// Format: "<source>:<name>"
	// Possible values:
	// - "header:<name>" - extract from HTTP header (e.g., "header:Authorization")
	//   When using "header:Authorization", the Bearer scheme is automatically handled
	// - "query:<name>" - extract from query parameter (e.g., "query:token")
	// - "cookie:<name>" - extract from cookie (e.g., "cookie:jwt")
	// Default: "header:Authorization"
	TokenLookup string

	// Logger is an optional slog logger for logging authentication events
	Logger *slog.Logger

	// ValidateIssuer enables issuer validation
	// If set, the token's "iss" claim must match this value
	ValidateIssuer string

	// ValidateAudience enables audience validation (optional)
	// If set, the token's "aud" claim must contain this value
	// If empty, audience validation is skipped
	ValidateAudience string

	// SignatureAlgorithm specifies the expected signature algorithm
	// Common values: HS256, HS384, HS512, RS256, RS384, RS512
	// If set, incoming tokens must use this algorithm
	// If empty, algorithm validation is skipped
	SignatureAlgorithm string

	// ClockSkew allows for clock skew when validating time-based claims
	// Default: 0 (no skew tolerance)
	ClockSkew time.Duration
}

// setDefaults sets default values for unspecified config fields
func (c *Config) setDefaults() {
	if c.TokenLookup == "" {
		c.TokenLookup = "header:Authorization"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// validate checks if the configuration is valid
func (c *Config) validate() error {
	// Skip validation if middleware is disabled
	if c.Disabled {
		return nil
	}

	if c.SigningKey == nil {
		return fmt.Errorf("configuration error: SigningKey must be provided")
	}

	return nil
}
