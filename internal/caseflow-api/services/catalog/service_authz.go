// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"log/slog"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

// Process type reads are open to every authenticated caller because users
// need them to open cases. Everything else in the catalog is admin-only.
const (
	actionWriteCatalog    = "catalog:write"
	actionViewCatalog     = "catalog:view"
	actionViewProcessType = "processtype:view"
)

// catalogServiceWithAuthz wraps the catalog service with permission checks.
type catalogServiceWithAuthz struct {
	internal Service
	authz    *services.Checker
}

var _ Service = (*catalogServiceWithAuthz)(nil)

// NewServiceWithAuthz creates a catalog service with authorization enabled.
func NewServiceWithAuthz(st *store.Store, enforcer *authz.Enforcer, logger *slog.Logger) Service {
	return &catalogServiceWithAuthz{
		internal: NewService(st, logger),
		authz:    services.NewChecker(enforcer, logger),
	}
}

func (s *catalogServiceWithAuthz) CreateStatus(ctx context.Context, req *models.CreateStatusRequest) (*models.Status, error) {
	if err := s.authz.Require(ctx, actionWriteCatalog); err != nil {
		return nil, err
	}
	return s.internal.CreateStatus(ctx, req)
}

func (s *catalogServiceWithAuthz) ListStatuses(ctx context.Context) ([]models.Status, error) {
	if err := s.authz.Require(ctx, actionViewCatalog); err != nil {
		return nil, err
	}
	return s.internal.ListStatuses(ctx)
}

func (s *catalogServiceWithAuthz) CreateProcessType(ctx context.Context, req *models.CreateProcessTypeRequest) (*models.ProcessType, error) {
	if err := s.authz.Require(ctx, actionWriteCatalog); err != nil {
		return nil, err
	}
	return s.internal.CreateProcessType(ctx, req)
}

func (s *catalogServiceWithAuthz) ListProcessTypes(ctx context.Context) ([]models.ProcessType, error) {
	if err := s.authz.Require(ctx, actionViewProcessType); err != nil {
		return nil, err
	}
	return s.internal.ListProcessTypes(ctx)
}

func (s *catalogServiceWithAuthz) CreateProcessDefinition(ctx context.Context, req *models.CreateProcessDefinitionRequest) (*models.ProcessDefinition, error) {
	if err := s.authz.Require(ctx, actionWriteCatalog); err != nil {
		return nil, err
	}
	return s.internal.CreateProcessDefinition(ctx, req)
}

func (s *catalogServiceWithAuthz) ListProcessDefinitions(ctx context.Context) ([]models.ProcessDefinition, error) {
	if err := s.authz.Require(ctx, actionViewCatalog); err != nil {
		return nil, err
	}
	return s.internal.ListProcessDefinitions(ctx)
}

func (s *catalogServiceWithAuthz) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	if err := s.authz.Require(ctx, actionWriteCatalog); err != nil {
		return nil, err
	}
	return s.internal.CreateTask(ctx, req)
}

func (s *catalogServiceWithAuthz) ListTasks(ctx context.Context) ([]models.Task, error) {
	if err := s.authz.Require(ctx, actionViewCatalog); err != nil {
		return nil, err
	}
	return s.internal.ListTasks(ctx)
}

func (s *catalogServiceWithAuthz) CreateTaskRule(ctx context.Context, req *models.CreateTaskRuleRequest) (*models.TaskRule, error) {
	if err := s.authz.Require(ctx, actionWriteCatalog); err != nil {
		return nil, err
	}
	return s.internal.CreateTaskRule(ctx, req)
}

func (s *catalogServiceWithAuthz) ListTaskRules(ctx context.Context) ([]models.TaskRule, error) {
	if err := s.authz.Require(ctx, actionViewCatalog); err != nil {
		return nil, err
	}
	return s.internal.ListTaskRules(ctx)
}

func (s *catalogServiceWithAuthz) CreateProcessDataType(ctx context.Context, req *models.CreateProcessDataTypeRequest) (*models.ProcessDataType, error) {
	if err := s.authz.Require(ctx, actionWriteCatalog); err != nil {
		return nil, err
	}
	return s.internal.CreateProcessDataType(ctx, req)
}

func (s *catalogServiceWithAuthz) ListProcessDataTypes(ctx context.Context) ([]models.ProcessDataType, error) {
	if err := s.authz.Require(ctx, actionViewCatalog); err != nil {
		return nil, err
	}
	return s.internal.ListProcessDataTypes(ctx)
}
