// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by query methods.
var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates a uniqueness constraint was violated.
	ErrDuplicate = errors.New("record already exists")
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
