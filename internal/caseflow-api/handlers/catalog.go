// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"errors"
	"net/http"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	catalogsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/catalog"
	"github.com/caseflow/caseflow/internal/server/middleware/logger"
)

// CreateStatus handles POST /statuses/
func (h *Handler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateStatus handler called")

	var req models.CreateStatusRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	status, err := h.services.Catalog.CreateStatus(ctx, &req)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrStatusExists) {
			writeErrorResponse(w, http.StatusBadRequest, "Status already exists", services.CodeConflict)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to create status", "error", err, "description", req.Description)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create status", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, status)
}

// ListStatuses handles GET /statuses
func (h *Handler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListStatuses handler called")

	statuses, err := h.services.Catalog.ListStatuses(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list statuses", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list statuses", services.CodeInternalError)
		return
	}

	writeListResponse(w, statuses)
}

// CreateProcessType handles POST /process-types/
func (h *Handler) CreateProcessType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateProcessType handler called")

	var req models.CreateProcessTypeRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	processType, err := h.services.Catalog.CreateProcessType(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to create process type", "error", err, "description", req.Description)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create process type", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, processType)
}

// ListProcessTypes handles GET /process-types
func (h *Handler) ListProcessTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListProcessTypes handler called")

	processTypes, err := h.services.Catalog.ListProcessTypes(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list process types", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list process types", services.CodeInternalError)
		return
	}

	writeListResponse(w, processTypes)
}

// CreateProcessDefinition handles POST /process-definitions/
func (h *Handler) CreateProcessDefinition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateProcessDefinition handler called")

	var req models.CreateProcessDefinitionRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	definition, err := h.services.Catalog.CreateProcessDefinition(ctx, &req)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrProcessTypeNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Process type not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to create process definition", "error", err, "process_type_no", req.ProcessTypeNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create process definition", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, definition)
}

// ListProcessDefinitions handles GET /process-definitions
func (h *Handler) ListProcessDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListProcessDefinitions handler called")

	definitions, err := h.services.Catalog.ListProcessDefinitions(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list process definitions", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list process definitions", services.CodeInternalError)
		return
	}

	writeListResponse(w, definitions)
}

// CreateTask handles POST /tasks/
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateTask handler called")

	var req models.CreateTaskRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	task, err := h.services.Catalog.CreateTask(ctx, &req)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrDefinitionNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Process definition not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to create task", "error", err, "process_definition_no", req.ProcessDefinitionNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create task", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, task)
}

// ListTasks handles GET /tasks
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListTasks handler called")

	tasks, err := h.services.Catalog.ListTasks(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list tasks", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list tasks", services.CodeInternalError)
		return
	}

	writeListResponse(w, tasks)
}

// CreateTaskRule handles POST /task-rules/
func (h *Handler) CreateTaskRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateTaskRule handler called")

	var req models.CreateTaskRuleRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	rule, err := h.services.Catalog.CreateTaskRule(ctx, &req)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrInvalidRule) {
			log.Warn("Rejected task rule with invalid expression", "error", err, "taskno", req.TaskNo)
			writeErrorResponse(w, http.StatusUnprocessableEntity, "Invalid rule expression", services.CodeInvalidInput)
			return
		}
		if errors.Is(err, catalogsvc.ErrTaskNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Task not found", services.CodeNotFound)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to create task rule", "error", err, "taskno", req.TaskNo)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create task rule", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, rule)
}

// ListTaskRules handles GET /task-rules
func (h *Handler) ListTaskRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListTaskRules handler called")

	rules, err := h.services.Catalog.ListTaskRules(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list task rules", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list task rules", services.CodeInternalError)
		return
	}

	writeListResponse(w, rules)
}

// CreateProcessDataType handles POST /process-data-types/
func (h *Handler) CreateProcessDataType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("CreateProcessDataType handler called")

	var req models.CreateProcessDataTypeRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	dataType, err := h.services.Catalog.CreateProcessDataType(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to create process data type", "error", err, "description", req.Description)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to create process data type", services.CodeInternalError)
		return
	}

	writeSuccessResponse(w, http.StatusCreated, dataType)
}

// ListProcessDataTypes handles GET /process-data-types
func (h *Handler) ListProcessDataTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	log.Debug("ListProcessDataTypes handler called")

	dataTypes, err := h.services.Catalog.ListProcessDataTypes(ctx)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			writeErrorResponse(w, http.StatusForbidden, msgForbidden, services.CodeForbidden)
			return
		}
		log.Error("Failed to list process data types", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list process data types", services.CodeInternalError)
		return
	}

	writeListResponse(w, dataTypes)
}
