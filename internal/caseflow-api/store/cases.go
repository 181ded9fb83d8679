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

// CreateCase inserts a new case and returns the stored row.
func (s *Store) CreateCase(ctx context.Context, q sqlx.ExtContext, clientID, clientType, createdBy string) (*models.Case, error) {
	const query = `
		INSERT INTO cases (client_id, client_type, usrid)
		VALUES ($1, $2, $3)
		RETURNING caseno, client_id, client_type, date_created, tmstamp, usrid`

	var c models.Case
	if err := sqlx.GetContext(ctx, q, &c, query, clientID, clientType, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return &c, nil
}

// GetCase looks a case up by number.
func (s *Store) GetCase(ctx context.Context, q sqlx.ExtContext, caseNo int) (*models.Case, error) {
	const query = `
		SELECT caseno, client_id, client_type, date_created, tmstamp, usrid
		FROM cases
		WHERE caseno = $1`

	var c models.Case
	err := sqlx.GetContext(ctx, q, &c, query, caseNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return &c, nil
}

// ListCases returns cases ordered by number. An empty owner returns every
// case, otherwise only cases created by that owner.
func (s *Store) ListCases(ctx context.Context, q sqlx.ExtContext, owner string) ([]models.Case, error) {
	query := `
		SELECT caseno, client_id, client_type, date_created, tmstamp, usrid
		FROM cases`
	args := []interface{}{}
	if owner != "" {
		query += ` WHERE usrid = $1`
		args = append(args, owner)
	}
	query += ` ORDER BY caseno`

	var cases []models.Case
	if err := sqlx.SelectContext(ctx, q, &cases, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}
