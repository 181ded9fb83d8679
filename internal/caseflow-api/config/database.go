// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/caseflow/caseflow/internal/caseflow-api/store"
	"github.com/caseflow/caseflow/internal/config"
)

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string.
	URL string `koanf:"url"`
	// Schema, when set, is pinned as the connection search_path.
	Schema string `koanf:"schema"`
	// MaxOpenConns bounds the connection pool size.
	MaxOpenConns int `koanf:"max_open_conns"`
	// MaxIdleConns bounds idle pooled connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// ConnMaxLifetime recycles connections older than this.
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	// Bootstrap creates missing tables and seeds the baseline statuses on
	// startup. Disable it when migrations are managed externally.
	Bootstrap bool `koanf:"bootstrap"`
}

// DatabaseDefaults returns the default database configuration.
func DatabaseDefaults() DatabaseConfig {
	return DatabaseConfig{
		URL:             "",
		Schema:          "",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		Bootstrap:       true,
	}
}

// Validate validates the database configuration.
func (c *DatabaseConfig) Validate(path *config.Path) config.ValidationErrors {
	var errs config.ValidationErrors

	if err := config.MustNotBeEmpty(path.Child("url"), c.URL); err != nil {
		errs = append(errs, err)
	}

	if err := config.MustBeNonNegative(path.Child("max_open_conns"), c.MaxOpenConns); err != nil {
		errs = append(errs, err)
	}

	if err := config.MustBeNonNegative(path.Child("max_idle_conns"), c.MaxIdleConns); err != nil {
		errs = append(errs, err)
	}

	if err := config.MustBeNonNegative(path.Child("conn_max_lifetime"), c.ConnMaxLifetime); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ToStoreConfig converts to the store library config.
func (c *DatabaseConfig) ToStoreConfig() store.Config {
	return store.Config{
		URL:             c.URL,
		Schema:          c.Schema,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
	}
}
