// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

// Config holds token signing and password hashing settings.
type Config struct {
	// SigningKey is the shared secret access tokens are signed with.
	SigningKey []byte
	// Algorithm is the JWT signing algorithm name, e.g. "HS256".
	Algorithm string
	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration
	// BcryptCost is the bcrypt work factor for password hashes.
	BcryptCost int
}

// authService handles accounts and tokens. Registration and token issuance
// are open endpoints, so this service carries no authorization wrapper.
type authService struct {
	store  *store.Store
	cfg    Config
	logger *slog.Logger
}

var _ Service = (*authService)(nil)

// NewService creates a new auth service.
func NewService(st *store.Store, cfg Config, logger *slog.Logger) Service {
	return &authService{
		store:  st,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	// The creator is the authenticated caller when a valid token accompanied
	// the request, otherwise the system itself.
	createdBy := "system"
	if actor, ok := services.ActorFromContext(ctx); ok {
		createdBy = actor.Username
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user *models.User
	err = s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		total, err := s.store.CountUsers(ctx, tx)
		if err != nil {
			return err
		}

		// Requested roles are ignored: the first account is the admin,
		// everyone after is a regular user.
		role := authz.RoleUser
		if total == 0 {
			role = authz.RoleAdmin
		}

		created, err := s.store.CreateUser(ctx, tx, req.Username, string(hashed), role, createdBy)
		if errors.Is(err, store.ErrDuplicate) {
			return ErrUsernameExists
		}
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "username", user.Username, "role", user.Role, "created_by", createdBy)
	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, s.store.DB(), username)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	method := jwt.GetSigningMethod(s.cfg.Algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", s.cfg.Algorithm)
	}

	now := time.Now()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": user.Username,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	})

	signed, err := token.SignedString(s.cfg.SigningKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Debug("access token issued", "username", user.Username)
	return signed, nil
}

func (s *authService) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, s.store.DB(), username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
