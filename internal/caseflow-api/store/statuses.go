// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// Status descriptions the step lifecycle depends on. Matching against the
// statuses table is case-insensitive.
const (
	StatusBusy     = "busy"
	StatusComplete = "complete"
)

// CreateStatus inserts a new status and returns the stored row.
func (s *Store) CreateStatus(ctx context.Context, q sqlx.ExtContext, description, createdBy string) (*models.Status, error) {
	const query = `
		INSERT INTO statuses (description, usrid)
		VALUES ($1, $2)
		RETURNING statusno, description, tmstamp, usrid`

	var status models.Status
	err := sqlx.GetContext(ctx, q, &status, query, description, createdBy)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create status: %w", err)
	}
	return &status, nil
}

// ListStatuses returns all statuses ordered by number.
func (s *Store) ListStatuses(ctx context.Context, q sqlx.ExtContext) ([]models.Status, error) {
	const query = `
		SELECT statusno, description, tmstamp, usrid
		FROM statuses
		ORDER BY statusno`

	var statuses []models.Status
	if err := sqlx.SelectContext(ctx, q, &statuses, query); err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

// GetStatusByDescription resolves a status by its description,
// case-insensitively.
func (s *Store) GetStatusByDescription(ctx context.Context, q sqlx.ExtContext, description string) (*models.Status, error) {
	const query = `
		SELECT statusno, description, tmstamp, usrid
		FROM statuses
		WHERE LOWER(description) = LOWER($1)
		ORDER BY statusno
		LIMIT 1`

	var status models.Status
	err := sqlx.GetContext(ctx, q, &status, query, description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return &status, nil
}
