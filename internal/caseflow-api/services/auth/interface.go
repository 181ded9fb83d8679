// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// Service defines the account and token operations.
type Service interface {
	// Register creates a user account. The first account ever created gets
	// the admin role, every later one the user role.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// IssueToken verifies the credentials and returns a signed access token.
	IssueToken(ctx context.Context, username, password string) (string, error)
	// GetUser looks an account up by username.
	GetUser(ctx context.Context, username string) (*models.User, error)
}
