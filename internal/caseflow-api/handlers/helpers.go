// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// Messages shared across handlers.
const (
	msgCredentials = "Could not validate credentials"
	msgForbidden   = "Insufficient permissions"
)

// writeSuccessResponse writes a successful API response
func writeSuccessResponse[T any](w http.ResponseWriter, statusCode int, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := models.SuccessResponse(data)
	_ = json.NewEncoder(w).Encode(response) // Ignore encoding errors for response
}

// writeErrorResponse writes an error API response
func writeErrorResponse(w http.ResponseWriter, statusCode int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := models.ErrorResponse(message, code)
	_ = json.NewEncoder(w).Encode(response) // Ignore encoding errors for response
}

// writeListResponse writes a list response with its total count
func writeListResponse[T any](w http.ResponseWriter, items []T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := models.ListSuccessResponse(items)
	_ = json.NewEncoder(w).Encode(response) // Ignore encoding errors for response
}

// validatable is implemented by all request models.
type validatable interface {
	Sanitize()
	Validate() error
}

// decodeRequest reads, sanitizes and validates a JSON request body. It writes
// the 422 response itself and reports whether the handler should continue.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) bool {
	log := logger.GetLogger(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Debug("failed to decode request body", "error", err, "path", r.URL.Path)
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Invalid request body", services.CodeInvalidInput)
		return false
	}

	req.Sanitize()
	if err := req.Validate(); err != nil {
		log.Debug("request validation failed", "error", err, "path", r.URL.Path)
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Invalid request data", services.CodeInvalidInput)
		return false
	}
	return true
}

// pathInt parses an integer path parameter. It writes the 422 response
// itself and reports whether the handler should continue.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Path parameter "+name+" must be an integer", services.CodeInvalidParams)
		return 0, false
	}
	return value, true
}
