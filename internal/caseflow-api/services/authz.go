// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/server/middleware/auth"
)

// Actor is the authenticated caller as seen by the service layer.
type Actor struct {
	Username string
	Role     string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == authz.RoleAdmin
}

// OwnerFilter returns the usrid filter for list queries: admins see every
// record, regular users only their own.
func (a Actor) OwnerFilter() string {
	if a.IsAdmin() {
		return ""
	}
	return a.Username
}

// MayAccess reports whether the actor may touch a resource owned by owner.
func (a Actor) MayAccess(owner string) bool {
	return a.IsAdmin() || a.Username == owner
}

// ActorFromContext resolves the caller stored by the identity middleware.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	principal, ok := auth.GetPrincipalFromContext(ctx)
	if !ok || principal == nil {
		return Actor{}, false
	}
	return Actor{Username: principal.Username, Role: principal.Role}, true
}

// Checker answers role permission questions for service authz wrappers.
type Checker struct {
	enforcer *authz.Enforcer
	logger   *slog.Logger
}

// NewChecker creates a new Checker.
func NewChecker(enforcer *authz.Enforcer, logger *slog.Logger) *Checker {
	return &Checker{enforcer: enforcer, logger: logger}
}

// Require verifies that the caller's role grants action. Missing callers and
// denied actions both surface ErrForbidden.
func (c *Checker) Require(ctx context.Context, action string) error {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return ErrForbidden
	}

	allowed, err := c.enforcer.CheckPermission(actor.Role, action)
	if err != nil {
		c.logger.Error("Failed to evaluate authorization", "error", err, "action", action, "role", actor.Role)
		return fmt.Errorf("authorization evaluation failed: %w", err)
	}

	if !allowed {
		c.logger.Debug("permission denied", "username", actor.Username, "role", actor.Role, "action", action)
		return ErrForbidden
	}

	return nil
}
