// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processes

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

type processesService struct {
	store  *store.Store
	logger *slog.Logger
}

var _ Service = (*processesService)(nil)

// NewService creates a new process service without authorization.
func NewService(st *store.Store, logger *slog.Logger) Service {
	return &processesService{
		store:  st,
		logger: logger,
	}
}

func (s *processesService) CreateProcess(ctx context.Context, req *models.CreateProcessRequest) (*models.Process, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.Process
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.store.GetCase(ctx, tx, req.CaseNo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCaseNotFound
			}
			return err
		}
		if _, err := s.store.GetProcessType(ctx, tx, req.ProcessTypeNo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProcessTypeNotFound
			}
			return err
		}

		busy, err := s.store.GetStatusByDescription(ctx, tx, store.StatusBusy)
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Error("required status missing", "description", store.StatusBusy)
			return services.ErrConfiguration
		}
		if err != nil {
			return err
		}

		created, err = s.store.CreateProcess(ctx, tx, req.CaseNo, req.ProcessTypeNo, busy.StatusNo, actor.Username)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("process created", "processno", created.ProcessNo, "caseno", created.CaseNo, "username", actor.Username)
	return created, nil
}

func (s *processesService) ListProcesses(ctx context.Context) ([]models.Process, error) {
	return s.store.ListProcesses(ctx, s.store.DB())
}
