// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	stepsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/steps"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// CloseStep handles POST /steps/{stepNo}/close
func (h *Handler) CloseStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CloseStep handler called")

	stepNo, ok := pathInt(w, r, "stepNo")
	if !ok {
		return
	}

	// The body is optional; closing with no payload is the common case.
	var req models.CloseStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Debug("failed to decode request body", "error", err, "path", r.URL.Path)
		writeErrorResponse(w, http.StatusUnprocessableEntity, "Invalid request body", services.CodeInvalidInput)
		return
	}

	step, err := h.services.Steps.CloseStep(ctx, stepNo, req.RuleData)
	if err != nil {
		if errors.Is(err, stepsvc.ErrStepNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Step not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, stepsvc.ErrStepNotBusy) {
			log.Warn("Step is not busy", "stepno", stepNo)
			writeErrorResponse(w, http.StatusBadRequest, "Step is not busy", services.CodeConflict)
			return
		}
		if errors.Is(err, stepsvc.ErrNoRuleMatched) {
			log.Warn("No rule matched for step", "stepno", stepNo)
			writeErrorResponse(w, http.StatusBadRequest, "No matching rule and no default task found", services.CodeConflict)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		if errors.Is(err, services.ErrConfiguration) {
			log.Error("Workflow configuration incomplete", "error", err, "stepno", stepNo)
			writeErrorResponse(w, http.StatusInternalServerError, err.Error(), services.CodeConfiguration)
			return
		}
		log.Error("Failed to close step", "error", err, "stepno", stepNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to close step", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, step)
}

// ListSteps handles GET /steps
func (h *Handler) ListSteps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListSteps handler called")

	steps, err := h.services.Steps.ListSteps(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list steps", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list steps", services.CodeInternalError)
		return
	}

	writeListResponse(w, steps)
}
