// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"errors"
	"net/http"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	authsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/auth"
	"github.com/caseflow/caseflow/internal/server/middleware/auth"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// IssueToken handles POST /auth/token. Credentials arrive as form fields to
// stay compatible with OAuth2 password-flow clients.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("IssueToken handler called")

	if err := r.ParseForm(); err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Invalid form body", services.CodeInvalidInput)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Username and password are required", services.CodeInvalidInput)
		return
	}

	token, err := h.services.Auth.IssueToken(ctx, username, password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			writeErrorResponse(w, http.StatusUnauthorized, "Incorrect username or password", services.CodeUnauthorized)
			return
		}
		log.Error("Failed to issue token", "error", err, "username", username)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to issue token", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("Register handler called")

	var req models.RegisterRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	user, err := h.services.Auth.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, authsvc.ErrUsernameExists) {
			writeErrorResponse(w, http.StatusBadRequest, "Username already exists", services.CodeConflict)
			return
		}
		log.Error("Failed to register user", "error", err, "username", req.Username)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to register user", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, models.NewUserResponse(user))
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("Me handler called")

	principal, ok := auth.GetPrincipal(r)
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, msgCredentials, services.CodeUnauthorized)
		return
	}

	user, err := h.services.Auth.GetUser(ctx, principal.Username)
	if err != nil {
		if errors.Is(err, authsvc.ErrUserNotFound) {
			writeErrorResponse(w, http.StatusUnauthorized, msgCredentials, services.CodeUnauthorized)
			return
		}
		log.Error("Failed to load current user", "error", err, "username", principal.Username)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to load current user", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, models.NewUserResponse(user))
}
