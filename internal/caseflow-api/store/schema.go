// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
)

// schemaStatements creates the workflow tables and indexes. Statements are
// idempotent so startup can run them unconditionally.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS statuses (
		statusno    SERIAL PRIMARY KEY,
		description TEXT NOT NULL UNIQUE,
		tmstamp     TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS process_types (
		process_type_no SERIAL PRIMARY KEY,
		description     TEXT NOT NULL,
		tmstamp         TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid           TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS process_definitions (
		process_definition_no SERIAL PRIMARY KEY,
		process_type_no       INTEGER NOT NULL REFERENCES process_types (process_type_no),
		description           TEXT NOT NULL,
		version               INTEGER NOT NULL DEFAULT 1,
		is_active             BOOLEAN NOT NULL DEFAULT TRUE,
		start_task_no         INTEGER,
		tmstamp               TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid                 TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		taskno                SERIAL PRIMARY KEY,
		process_definition_no INTEGER NOT NULL REFERENCES process_definitions (process_definition_no),
		description           TEXT NOT NULL,
		reference             TEXT NOT NULL DEFAULT '',
		tmstamp               TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid                 TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS task_rules (
		taskruleno   SERIAL PRIMARY KEY,
		taskno       INTEGER NOT NULL REFERENCES tasks (taskno),
		rule         TEXT NOT NULL,
		next_task_no INTEGER REFERENCES tasks (taskno),
		tmstamp      TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS process_data_types (
		process_data_type_no SERIAL PRIMARY KEY,
		description          TEXT NOT NULL,
		tmstamp              TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid                TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cases (
		caseno       SERIAL PRIMARY KEY,
		client_id    TEXT NOT NULL,
		client_type  TEXT NOT NULL,
		date_created TIMESTAMPTZ NOT NULL DEFAULT now(),
		tmstamp      TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS processes (
		processno       SERIAL PRIMARY KEY,
		case_no         INTEGER NOT NULL REFERENCES cases (caseno),
		process_type_no INTEGER NOT NULL REFERENCES process_types (process_type_no),
		status_no       INTEGER NOT NULL REFERENCES statuses (statusno),
		date_started    TIMESTAMPTZ NOT NULL DEFAULT now(),
		date_ended      TIMESTAMPTZ,
		tmstamp         TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid           TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS steps (
		stepno       SERIAL PRIMARY KEY,
		processno    INTEGER NOT NULL REFERENCES processes (processno),
		taskno       INTEGER NOT NULL REFERENCES tasks (taskno),
		status_no    INTEGER NOT NULL REFERENCES statuses (statusno),
		date_started TIMESTAMPTZ NOT NULL DEFAULT now(),
		date_ended   TIMESTAMPTZ,
		tmstamp      TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS process_data (
		process_data_no      SERIAL PRIMARY KEY,
		processno            INTEGER NOT NULL REFERENCES processes (processno),
		process_data_type_no INTEGER NOT NULL REFERENCES process_data_types (process_data_type_no),
		fieldname            TEXT NOT NULL,
		value                TEXT NOT NULL DEFAULT '',
		tmstamp              TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid                TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		userid          SERIAL PRIMARY KEY,
		username        TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		role            TEXT NOT NULL,
		tmstamp         TIMESTAMPTZ NOT NULL DEFAULT now(),
		usrid           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_task_rules_taskno ON task_rules (taskno)`,
	`CREATE INDEX IF NOT EXISTS idx_processes_case_no ON processes (case_no)`,
	`CREATE INDEX IF NOT EXISTS idx_steps_processno ON steps (processno)`,
	`CREATE INDEX IF NOT EXISTS idx_steps_status_no ON steps (status_no)`,
	`CREATE INDEX IF NOT EXISTS idx_process_data_processno ON process_data (processno)`,
	`CREATE INDEX IF NOT EXISTS idx_cases_usrid ON cases (usrid)`,
}

// EnsureSchema creates the schema and tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.schema != "" {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %q", s.schema)); err != nil {
			return fmt.Errorf("failed to create schema %s: %w", s.schema, err)
		}
	}

	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	s.logger.Info("database schema ensured", "statements", len(schemaStatements))
	return nil
}

// SeedStatuses inserts the busy and complete statuses the engine requires
// when they are not present yet.
func (s *Store) SeedStatuses(ctx context.Context) error {
	const query = `
		INSERT INTO statuses (description, usrid)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM statuses WHERE LOWER(description) = LOWER($1)
		)`

	for _, description := range []string{StatusBusy, StatusComplete} {
		if _, err := s.db.ExecContext(ctx, query, description, "system"); err != nil {
			return fmt.Errorf("failed to seed status %s: %w", description, err)
		}
	}

	s.logger.Info("required statuses seeded")
	return nil
}
