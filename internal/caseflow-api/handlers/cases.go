// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"errors"
	"net/http"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	casesvc "github.com/caseflow/caseflow/internal/caseflow-api/services/cases"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// CreateCase handles POST /cases/
func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateCase handler called")

	var req models.CreateCaseRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	created, err := h.services.Cases.CreateCase(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		if errors.Is(err, casesvc.ErrNoActiveDefinition) {
			writeErrorResponse(w, http.StatusNotFound, "Active process definition for this type not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrConfiguration) {
			log.Error("Workflow configuration incomplete", "error", err, "process_type_no", req.ProcessTypeNo)
			writeErrorResponse(w, http.StatusInternalServerError, err.Error(), services.CodeConfiguration)
			return
		}
		log.Error("Failed to create case", "error", err, "client_id", req.ClientID)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create case", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, created)
}

// ListCases handles GET /cases
func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListCases handler called")

	cases, err := h.services.Cases.ListCases(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list cases", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list cases", services.CodeInternalError)
		return
	}

	writeListResponse(w, cases)
}

// GetCase handles GET /cases/{caseNo}
func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("GetCase handler called")

	caseNo, ok := pathInt(w, r, "caseNo")
	if !ok {
		return
	}

	c, err := h.services.Cases.GetCase(ctx, caseNo)
	if err != nil {
		if errors.Is(err, casesvc.ErrCaseNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Case not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to get case", "error", err, "caseno", caseNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to get case", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, c)
}

// GetCurrentStep handles GET /cases/{caseNo}/current-step
func (h *Handler) GetCurrentStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("GetCurrentStep handler called")

	caseNo, ok := pathInt(w, r, "caseNo")
	if !ok {
		return
	}

	step, err := h.services.Cases.GetCurrentStep(ctx, caseNo)
	if err != nil {
		if errors.Is(err, casesvc.ErrCaseNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Case not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, casesvc.ErrNoBusyStep) {
			writeErrorResponse(w, http.StatusNotFound, "No busy step found for this case", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		if errors.Is(err, services.ErrConfiguration) {
			log.Error("Workflow configuration incomplete", "error", err, "caseno", caseNo)
			writeErrorResponse(w, http.StatusInternalServerError, err.Error(), services.CodeConfiguration)
			return
		}
		log.Error("Failed to get current step", "error", err, "caseno", caseNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to get current step", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusOK, step)
}

// ListCaseSteps handles GET /cases/{caseNo}/steps
func (h *Handler) ListCaseSteps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListCaseSteps handler called")

	caseNo, ok := pathInt(w, r, "caseNo")
	if !ok {
		return
	}

	steps, err := h.services.Cases.ListCaseSteps(ctx, caseNo)
	if err != nil {
		if errors.Is(err, casesvc.ErrCaseNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Case not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list case steps", "error", err, "caseno", caseNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list case steps", services.CodeInternalError)
		return
	}

	writeListResponse(w, steps)
}

// ListCaseProcessData handles GET /cases/{caseNo}/process-data
func (h *Handler) ListCaseProcessData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListCaseProcessData handler called")

	caseNo, ok := pathInt(w, r, "caseNo")
	if !ok {
		return
	}

	records, err := h.services.Cases.ListCaseProcessData(ctx, caseNo)
	if err != nil {
		if errors.Is(err, casesvc.ErrCaseNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Case not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list case process data", "error", err, "caseno", caseNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list case process data", services.CodeInternalError)
		return
	}

	writeListResponse(w, records)
}
