// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"errors"
	"net/http"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	processsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/processes"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// CreateProcess handles POST /processes/
func (h *Handler) CreateProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateProcess handler called")

	var req models.CreateProcessRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	process, err := h.services.Processes.CreateProcess(ctx, &req)
	if err != nil {
		if errors.Is(err, processsvc.ErrCaseNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Case not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, processsvc.ErrProcessTypeNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Process type not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		if errors.Is(err, services.ErrConfiguration) {
			log.Error("Workflow configuration incomplete", "error", err, "caseno", req.CaseNo)
			writeErrorResponse(w, http.StatusInternalServerError, err.Error(), services.CodeConfiguration)
			return
		}
		log.Error("Failed to create process", "error", err, "caseno", req.CaseNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create process", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, process)
}

// ListProcesses handles GET /processes
func (h *Handler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListProcesses handler called")

	processes, err := h.services.Processes.ListProcesses(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list processes", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list processes", services.CodeInternalError)
		return
	}

	writeListResponse(w, processes)
}
