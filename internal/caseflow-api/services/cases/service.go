// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package cases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

// casesService handles case business logic without role checks. Ownership
// filtering stays here because it depends on the stored rows.
type casesService struct {
	store  *store.Store
	logger *slog.Logger
}

var _ Service = (*casesService)(nil)

// NewService creates a new case service without authorization.
func NewService(st *store.Store, logger *slog.Logger) Service {
	return &casesService{
		store:  st,
		logger: logger,
	}
}

func (s *casesService) CreateCase(ctx context.Context, req *models.CreateCaseRequest) (*models.Case, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.Case
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		def, err := s.store.GetActiveProcessDefinition(ctx, tx, req.ProcessTypeNo)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoActiveDefinition
		}
		if err != nil {
			return err
		}
		if def.StartTaskNo == nil {
			s.logger.Error("active process definition has no start task", "process_definition_no", def.ProcessDefinitionNo)
			return fmt.Errorf("active process definition has no start task: %w", services.ErrConfiguration)
		}

		busy, err := s.store.GetStatusByDescription(ctx, tx, store.StatusBusy)
		if errors.Is(err, store.ErrNotFound) {
			return services.ErrConfiguration
		}
		if err != nil {
			return err
		}

		c, err := s.store.CreateCase(ctx, tx, req.ClientID, req.ClientType, actor.Username)
		if err != nil {
			return err
		}

		p, err := s.store.CreateProcess(ctx, tx, c.CaseNo, req.ProcessTypeNo, busy.StatusNo, actor.Username)
		if err != nil {
			return err
		}

		if _, err := s.store.CreateStep(ctx, tx, p.ProcessNo, *def.StartTaskNo, busy.StatusNo, actor.Username); err != nil {
			return err
		}

		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("case created", "caseno", created.CaseNo, "process_type_no", req.ProcessTypeNo, "username", actor.Username)
	return created, nil
}

func (s *casesService) GetCase(ctx context.Context, caseNo int) (*models.Case, error) {
	return s.authorizedCase(ctx, caseNo)
}

func (s *casesService) ListCases(ctx context.Context) ([]models.Case, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}
	return s.store.ListCases(ctx, s.store.DB(), actor.OwnerFilter())
}

func (s *casesService) GetCurrentStep(ctx context.Context, caseNo int) (*models.Step, error) {
	c, err := s.authorizedCase(ctx, caseNo)
	if err != nil {
		return nil, err
	}

	busy, err := s.store.GetStatusByDescription(ctx, s.store.DB(), store.StatusBusy)
	if errors.Is(err, store.ErrNotFound) {
		return nil, services.ErrConfiguration
	}
	if err != nil {
		return nil, err
	}

	step, err := s.store.GetCurrentStepByCase(ctx, s.store.DB(), c.CaseNo, busy.StatusNo)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoBusyStep
	}
	if err != nil {
		return nil, err
	}
	return step, nil
}

func (s *casesService) ListCaseSteps(ctx context.Context, caseNo int) ([]models.Step, error) {
	c, err := s.authorizedCase(ctx, caseNo)
	if err != nil {
		return nil, err
	}
	return s.store.ListStepsByCase(ctx, s.store.DB(), c.CaseNo)
}

func (s *casesService) ListCaseProcessData(ctx context.Context, caseNo int) ([]models.ProcessData, error) {
	c, err := s.authorizedCase(ctx, caseNo)
	if err != nil {
		return nil, err
	}
	return s.store.ListProcessDataByCase(ctx, s.store.DB(), c.CaseNo)
}

// authorizedCase loads a case and hides it from callers who do not own it.
func (s *casesService) authorizedCase(ctx context.Context, caseNo int) (*models.Case, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	c, err := s.store.GetCase(ctx, s.store.DB(), caseNo)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}

	if !actor.MayAccess(c.CreatedBy) {
		return nil, ErrCaseNotFound
	}
	return c, nil
}
