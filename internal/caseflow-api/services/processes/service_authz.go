// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processes

import (
	"context"
	"log/slog"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

const (
	actionCreateProcess = "process:create"
	actionViewProcess   = "process:view"
)

// processesServiceWithAuthz wraps the process service with permission checks.
type processesServiceWithAuthz struct {
	internal Service
	authz    *services.Checker
}

var _ Service = (*processesServiceWithAuthz)(nil)

// NewServiceWithAuthz creates a process service with authorization enabled.
func NewServiceWithAuthz(st *store.Store, enforcer *authz.Enforcer, logger *slog.Logger) Service {
	return &processesServiceWithAuthz{
		internal: NewService(st, logger),
		authz:    services.NewChecker(enforcer, logger),
	}
}

func (s *processesServiceWithAuthz) CreateProcess(ctx context.Context, req *models.CreateProcessRequest) (*models.Process, error) {
	if err := s.authz.Require(ctx, actionCreateProcess); err != nil {
		return nil, err
	}
	return s.internal.CreateProcess(ctx, req)
}

func (s *processesServiceWithAuthz) ListProcesses(ctx context.Context) ([]models.Process, error) {
	if err := s.authz.Require(ctx, actionViewProcess); err != nil {
		return nil, err
	}
	return s.internal.ListProcesses(ctx)
}
