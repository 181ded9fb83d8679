// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "os"

// Plain environment variable names kept for deployments that predate the
// unified CASEFLOW__ loader.
const (
	// EnvConfigPath points at the YAML config file.
	EnvConfigPath = "CASEFLOW_CONFIG_PATH"

	// EnvDatabaseURL is the PostgreSQL connection string.
	EnvDatabaseURL = "DATABASE_URL"

	// EnvJWTSecretKey is the access token signing secret.
	EnvJWTSecretKey = "JWT_SECRET_KEY"
)

// applyLegacyEnv fills settings that are still empty after the loader ran
// from the plain environment variable names. Values from the unified loader
// always win.
func (c *Config) applyLegacyEnv() {
	if c.Database.URL == "" {
		c.Database.URL = os.Getenv(EnvDatabaseURL)
	}
	if c.Security.JWT.SigningKey == "" {
		c.Security.JWT.SigningKey = os.Getenv(EnvJWTSecretKey)
	}
}
