// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"log/slog"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

const (
	actionCloseStep = "step:close"
	actionListSteps = "step:list"
)

// stepsServiceWithAuthz wraps the step service with permission checks.
type stepsServiceWithAuthz struct {
	internal Service
	authz    *services.Checker
}

var _ Service = (*stepsServiceWithAuthz)(nil)

// NewServiceWithAuthz creates a step service with authorization enabled.
func NewServiceWithAuthz(st *store.Store, enforcer *authz.Enforcer, logger *slog.Logger) Service {
	return &stepsServiceWithAuthz{
		internal: NewService(st, logger),
		authz:    services.NewChecker(enforcer, logger),
	}
}

func (s *stepsServiceWithAuthz) CloseStep(ctx context.Context, stepNo int, ruleData map[string]string) (*models.Step, error) {
	if err := s.authz.Require(ctx, actionCloseStep); err != nil {
		return nil, err
	}
	return s.internal.CloseStep(ctx, stepNo, ruleData)
}

func (s *stepsServiceWithAuthz) ListSteps(ctx context.Context) ([]models.Step, error) {
	if err := s.authz.Require(ctx, actionListSteps); err != nil {
		return nil, err
	}
	return s.internal.ListSteps(ctx)
}
