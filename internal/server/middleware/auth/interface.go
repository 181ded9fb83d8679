// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth defines the authenticated principal carried through request contexts.
package auth

import (
	"context"
	"net/http"
)

// Role names assigned to principals.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Principal is the authenticated caller resolved from the request credentials.
type Principal struct {
	Username string // Unique username of the caller
	Role     string // Assigned role (admin, user)
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// Middleware defines the interface that all authentication middlewares must implement
type Middleware interface {
	// Handler returns an HTTP middleware handler that:
	// 1. Authenticates the request (validates credentials)
	// 2. Resolves the Principal (username and role)
	// 3. Stores the Principal in the request context
	Handler(next http.Handler) http.Handler
}

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	// principalContextKey is the context key for storing the Principal
	principalContextKey contextKey = "principal"
)

// GetPrincipal retrieves the Principal from the request context
func GetPrincipal(r *http.Request) (*Principal, bool) {
	p, ok := r.Context().Value(principalContextKey).(*Principal)
	return p, ok
}

// GetPrincipalFromContext retrieves the Principal from a context.Context
func GetPrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}

// SetPrincipal stores the Principal in the request context
func SetPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}
