// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"errors"
	"net/http"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	processdatasvc "github.com/caseflow/caseflow/internal/caseflow-api/services/processdata"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// CreateProcessData handles POST /processes/{processNo}/data/
func (h *Handler) CreateProcessData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateProcessData handler called")

	processNo, ok := pathInt(w, r, "processNo")
	if !ok {
		return
	}

	var req models.CreateProcessDataRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	record, err := h.services.ProcessData.CreateProcessData(ctx, processNo, &req)
	if err != nil {
		if errors.Is(err, processdatasvc.ErrProcessNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Process not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, processdatasvc.ErrDataTypeNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Process data type not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to create process data", "error", err, "processno", processNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create process data", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, record)
}

// ListProcessData handles GET /process-data
func (h *Handler) ListProcessData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListProcessData handler called")

	records, err := h.services.ProcessData.ListProcessData(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list process data", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list process data", services.CodeInternalError)
		return
	}

	writeListResponse(w, records)
}
