// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processdata

import (
	"context"
	"log/slog"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

const (
	actionCreateProcessData = "processdata:create"
	actionViewProcessData   = "processdata:view"
)

// processDataServiceWithAuthz wraps the process data service with
// permission checks.
type processDataServiceWithAuthz struct {
	internal Service
	authz    *services.Checker
}

var _ Service = (*processDataServiceWithAuthz)(nil)

// NewServiceWithAuthz creates a process data service with authorization
// enabled.
func NewServiceWithAuthz(st *store.Store, enforcer *authz.Enforcer, logger *slog.Logger) Service {
	return &processDataServiceWithAuthz{
		internal: NewService(st, logger),
		authz:    services.NewChecker(enforcer, logger),
	}
}

func (s *processDataServiceWithAuthz) CreateProcessData(ctx context.Context, processNo int, req *models.CreateProcessDataRequest) (*models.ProcessData, error) {
	if err := s.authz.Require(ctx, actionCreateProcessData); err != nil {
		return nil, err
	}
	return s.internal.CreateProcessData(ctx, processNo, req)
}

func (s *processDataServiceWithAuthz) ListProcessData(ctx context.Context) ([]models.ProcessData, error) {
	if err := s.authz.Require(ctx, actionViewProcessData); err != nil {
		return nil, err
	}
	return s.internal.ListProcessData(ctx)
}
