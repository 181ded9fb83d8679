// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"net/http"

	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/server/middleware/auth"
	"github.com/caseflow/caseflow/internal/server/middleware/auth/jwt"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// requireIdentity rejects requests whose bearer token does not resolve to a
// stored account and attaches the resolved principal to the context.
func (h *Handler) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := h.resolvePrincipal(r)
		if !ok {
			writeErrorResponse(w, http.StatusUnauthorized, msgCredentials, services.CodeUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.SetPrincipal(r.Context(), principal)))
	})
}

// optionalIdentity attaches a principal when the request carries a valid
// token and passes anonymous requests through untouched.
func (h *Handler) optionalIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := h.resolvePrincipal(r); ok {
			r = r.WithContext(auth.SetPrincipal(r.Context(), principal))
		}
		next.ServeHTTP(w, r)
	})
}

// resolvePrincipal maps the validated token subject to a stored account.
// Tokens for deleted accounts resolve to nothing.
func (h *Handler) resolvePrincipal(r *http.Request) (*auth.Principal, bool) {
	sub, ok := jwt.Subject(r.Context())
	if !ok {
		return nil, false
	}

	user, err := h.services.Auth.GetUser(r.Context(), sub)
	if err != nil {
		logger.GetLogger(r.Context()).Debug("token subject has no account", "username", sub, "error", err)
		return nil, false
	}

	return &auth.Principal{Username: user.Username, Role: user.Role}, true
}
