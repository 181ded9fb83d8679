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

// CreateUser inserts a new user and returns the stored row.
func (s *Store) CreateUser(ctx context.Context, q sqlx.ExtContext, username, hashedPassword, role, createdBy string) (*models.User, error) {
	const query = `
		INSERT INTO users (username, hashed_password, role, usrid)
		VALUES ($1, $2, $3, $4)
		RETURNING userid, username, hashed_password, role, tmstamp, usrid`

	var user models.User
	err := sqlx.GetContext(ctx, q, &user, query, username, hashedPassword, role, createdBy)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// GetUserByUsername looks a user up by username.
func (s *Store) GetUserByUsername(ctx context.Context, q sqlx.ExtContext, username string) (*models.User, error) {
	const query = `
		SELECT userid, username, hashed_password, role, tmstamp, usrid
		FROM users
		WHERE username = $1`

	var user models.User
	err := sqlx.GetContext(ctx, q, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context, q sqlx.ExtContext) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
