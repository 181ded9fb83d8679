// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package cases

import (
	"context"
	"log/slog"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

const (
	actionCreateCase      = "case:create"
	actionViewCase        = "case:view"
	actionViewStep        = "step:view"
	actionViewProcessData = "processdata:view"
)

// casesServiceWithAuthz wraps a Service and adds role checks.
// Handlers should use this. Other services should use the unwrapped Service directly.
type casesServiceWithAuthz struct {
	internal Service
	authz    *services.Checker
}

var _ Service = (*casesServiceWithAuthz)(nil)

// NewServiceWithAuthz creates a case service with authorization checks.
func NewServiceWithAuthz(st *store.Store, enforcer *authz.Enforcer, logger *slog.Logger) Service {
	return &casesServiceWithAuthz{
		internal: NewService(st, logger),
		authz:    services.NewChecker(enforcer, logger),
	}
}

func (s *casesServiceWithAuthz) CreateCase(ctx context.Context, req *models.CreateCaseRequest) (*models.Case, error) {
	if err := s.authz.Require(ctx, actionCreateCase); err != nil {
		return nil, err
	}
	return s.internal.CreateCase(ctx, req)
}

func (s *casesServiceWithAuthz) GetCase(ctx context.Context, caseNo int) (*models.Case, error) {
	if err := s.authz.Require(ctx, actionViewCase); err != nil {
		return nil, err
	}
	return s.internal.GetCase(ctx, caseNo)
}

func (s *casesServiceWithAuthz) ListCases(ctx context.Context) ([]models.Case, error) {
	if err := s.authz.Require(ctx, actionViewCase); err != nil {
		return nil, err
	}
	return s.internal.ListCases(ctx)
}

func (s *casesServiceWithAuthz) GetCurrentStep(ctx context.Context, caseNo int) (*models.Step, error) {
	if err := s.authz.Require(ctx, actionViewStep); err != nil {
		return nil, err
	}
	return s.internal.GetCurrentStep(ctx, caseNo)
}

func (s *casesServiceWithAuthz) ListCaseSteps(ctx context.Context, caseNo int) ([]models.Step, error) {
	if err := s.authz.Require(ctx, actionViewStep); err != nil {
		return nil, err
	}
	return s.internal.ListCaseSteps(ctx, caseNo)
}

func (s *casesServiceWithAuthz) ListCaseProcessData(ctx context.Context, caseNo int) ([]models.ProcessData, error) {
	if err := s.authz.Require(ctx, actionViewProcessData); err != nil {
		return nil, err
	}
	return s.internal.ListCaseProcessData(ctx, caseNo)
}
