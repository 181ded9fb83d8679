// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package config defines the caseflow-api configuration: defaults, YAML file
// loading, CASEFLOW__ environment overrides and validation.
package config

import (
	"fmt"

	"github.com/spf13/pflag"

	coreconfig "github.com/caseflow/caseflow/internal/config"
)

// Config is the top-level configuration for caseflow-api.
type Config struct {
	// Server defines HTTP server settings.
	Server ServerConfig `koanf:"server"`
	// Database defines PostgreSQL connection settings.
	Database DatabaseConfig `koanf:"database"`
	// Security defines token signing and password hashing settings.
	Security SecurityConfig `koanf:"security"`
	// Logging defines logging settings.
	Logging LoggingConfig `koanf:"logging"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Server:   ServerDefaults(),
		Database: DatabaseDefaults(),
		Security: SecurityDefaults(),
		Logging:  LoggingDefaults(),
	}
}

// flagMappings routes explicitly set CLI flags into config keys.
var flagMappings = map[string]string{
	"port":      "server.port",
	"log-level": "logging.level",
}

// Load loads configuration from file, environment variables and CLI flags.
// Environment variables use the prefix CASEFLOW__ with double underscore for
// nesting, e.g. CASEFLOW__SERVER__PORT=9090. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	loader := coreconfig.NewLoader("CASEFLOW")

	if err := loader.LoadWithDefaults(Defaults(), configPath); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags != nil {
		if err := loader.LoadFlags(flags, flagMappings); err != nil {
			return nil, fmt.Errorf("failed to apply flags: %w", err)
		}
	}

	var cfg Config
	if err := loader.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyLegacyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs coreconfig.ValidationErrors

	errs = append(errs, c.Server.Validate(coreconfig.NewPath("server"))...)
	errs = append(errs, c.Database.Validate(coreconfig.NewPath("database"))...)
	errs = append(errs, c.Security.Validate(coreconfig.NewPath("security"))...)
	errs = append(errs, c.Logging.Validate(coreconfig.NewPath("logging"))...)

	return errs.OrNil()
}
