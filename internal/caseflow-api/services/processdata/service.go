// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processdata

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

type processDataService struct {
	store  *store.Store
	logger *slog.Logger
}

var _ Service = (*processDataService)(nil)

// NewService creates a new process data service without authorization.
func NewService(st *store.Store, logger *slog.Logger) Service {
	return &processDataService{
		store:  st,
		logger: logger,
	}
}

func (s *processDataService) CreateProcessData(ctx context.Context, processNo int, req *models.CreateProcessDataRequest) (*models.ProcessData, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.ProcessData
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.store.GetProcess(ctx, tx, processNo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProcessNotFound
			}
			return err
		}

		if !actor.IsAdmin() {
			owner, err := s.store.CaseOwnerForProcess(ctx, tx, processNo)
			if err != nil {
				return err
			}
			if owner != actor.Username {
				return services.ErrForbidden
			}
		}

		if _, err := s.store.GetProcessDataType(ctx, tx, req.ProcessDataTypeNo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrDataTypeNotFound
			}
			return err
		}

		var err error
		created, err = s.store.CreateProcessData(ctx, tx, processNo, req.ProcessDataTypeNo, req.Fieldname, req.Value, actor.Username)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("process data created", "processno", processNo, "fieldname", created.Fieldname, "username", actor.Username)
	return created, nil
}

func (s *processDataService) ListProcessData(ctx context.Context) ([]models.ProcessData, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}
	return s.store.ListProcessData(ctx, s.store.DB(), actor.OwnerFilter())
}
