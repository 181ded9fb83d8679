// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	authsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/auth"
	"github.com/caseflow/caseflow/internal/config"
)

// SecurityConfig defines token signing and password hashing settings.
type SecurityConfig struct {
	// JWT defines access token settings.
	JWT JWTConfig `koanf:"jwt"`
	// BcryptCost is the bcrypt work factor for password hashes.
	BcryptCost int `koanf:"bcrypt_cost"`
}

// JWTConfig defines access token settings. Tokens are signed with a shared
// secret, so only the HMAC algorithms are accepted.
type JWTConfig struct {
	// SigningKey is the shared secret access tokens are signed with.
	SigningKey string `koanf:"signing_key"`
	// Algorithm is the JWT signing algorithm name.
	Algorithm string `koanf:"algorithm"`
	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration `koanf:"token_ttl"`
}

// SecurityDefaults returns the default security configuration. SigningKey has
// no default and must be provided.
func SecurityDefaults() SecurityConfig {
	return SecurityConfig{
		JWT: JWTConfig{
			SigningKey: "",
			Algorithm:  "HS256",
			TokenTTL:   time.Hour,
		},
		BcryptCost: 12,
	}
}

// Validate validates the security configuration.
func (c *SecurityConfig) Validate(path *config.Path) config.ValidationErrors {
	var errs config.ValidationErrors

	jwtPath := path.Child("jwt")
	if err := config.MustNotBeEmpty(jwtPath.Child("signing_key"), c.JWT.SigningKey); err != nil {
		errs = append(errs, err)
	}

	if err := config.MustBeOneOf(jwtPath.Child("algorithm"), c.JWT.Algorithm, []string{"HS256", "HS384", "HS512"}); err != nil {
		errs = append(errs, err)
	}

	if err := config.MustBeGreaterThan(jwtPath.Child("token_ttl"), c.JWT.TokenTTL, 0); err != nil {
		errs = append(errs, err)
	}

	// bcrypt rejects work factors outside 4..31
	if err := config.MustBeInRange(path.Child("bcrypt_cost"), c.BcryptCost, 4, 31); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ToAuthConfig converts to the auth service config.
func (c *SecurityConfig) ToAuthConfig() authsvc.Config {
	return authsvc.Config{
		SigningKey: []byte(c.JWT.SigningKey),
		Algorithm:  c.JWT.Algorithm,
		TokenTTL:   c.JWT.TokenTTL,
		BcryptCost: c.BcryptCost,
	}
}
