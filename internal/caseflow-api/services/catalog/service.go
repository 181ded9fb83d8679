// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
	"github.com/caseflow/caseflow/internal/rules"
)

type catalogService struct {
	store  *store.Store
	logger *slog.Logger
}

var _ Service = (*catalogService)(nil)

// NewService creates a new catalog service without authorization.
func NewService(st *store.Store, logger *slog.Logger) Service {
	return &catalogService{
		store:  st,
		logger: logger,
	}
}

func (s *catalogService) CreateStatus(ctx context.Context, req *models.CreateStatusRequest) (*models.Status, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.Status
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		created, err = s.store.CreateStatus(ctx, tx, req.Description, actor.Username)
		if errors.Is(err, store.ErrDuplicate) {
			return ErrStatusExists
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("status created", "statusno", created.StatusNo, "description", created.Description)
	return created, nil
}

func (s *catalogService) ListStatuses(ctx context.Context) ([]models.Status, error) {
	return s.store.ListStatuses(ctx, s.store.DB())
}

func (s *catalogService) CreateProcessType(ctx context.Context, req *models.CreateProcessTypeRequest) (*models.ProcessType, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.ProcessType
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		created, err = s.store.CreateProcessType(ctx, tx, req.Description, actor.Username)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("process type created", "process_type_no", created.ProcessTypeNo, "description", created.Description)
	return created, nil
}

func (s *catalogService) ListProcessTypes(ctx context.Context) ([]models.ProcessType, error) {
	return s.store.ListProcessTypes(ctx, s.store.DB())
}

// CreateProcessDefinition inserts the definition, materializes its start
// task from the request, links the two, and seeds the start task with a
// self-referential default rule. Admins replace that placeholder once the
// real task graph is in place.
func (s *catalogService) CreateProcessDefinition(ctx context.Context, req *models.CreateProcessDefinitionRequest) (*models.ProcessDefinition, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.ProcessDefinition
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.store.GetProcessType(ctx, tx, req.ProcessTypeNo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProcessTypeNotFound
			}
			return err
		}

		def, err := s.store.CreateProcessDefinition(ctx, tx, req.ProcessTypeNo, req.Description, 1, true, actor.Username)
		if err != nil {
			return err
		}

		task, err := s.store.CreateTask(ctx, tx, def.ProcessDefinitionNo, req.StartTaskDescription, req.StartTaskReference, actor.Username)
		if err != nil {
			return err
		}
		if err := s.store.SetDefinitionStartTask(ctx, tx, def.ProcessDefinitionNo, task.TaskNo); err != nil {
			return err
		}
		if _, err := s.store.CreateTaskRule(ctx, tx, task.TaskNo, rules.DefaultRule, &task.TaskNo, actor.Username); err != nil {
			return err
		}

		def.StartTaskNo = &task.TaskNo
		created = def
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("process definition created",
		"process_definition_no", created.ProcessDefinitionNo,
		"process_type_no", created.ProcessTypeNo,
		"start_task_no", *created.StartTaskNo)
	return created, nil
}

func (s *catalogService) ListProcessDefinitions(ctx context.Context) ([]models.ProcessDefinition, error) {
	return s.store.ListProcessDefinitions(ctx, s.store.DB())
}

func (s *catalogService) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.Task
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.store.GetProcessDefinition(ctx, tx, req.ProcessDefinitionNo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrDefinitionNotFound
			}
			return err
		}

		var err error
		created, err = s.store.CreateTask(ctx, tx, req.ProcessDefinitionNo, req.Description, req.Reference, actor.Username)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task created", "taskno", created.TaskNo, "process_definition_no", created.ProcessDefinitionNo)
	return created, nil
}

func (s *catalogService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.store.ListTasks(ctx, s.store.DB())
}

func (s *catalogService) CreateTaskRule(ctx context.Context, req *models.CreateTaskRuleRequest) (*models.TaskRule, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	if !rules.IsDefault(req.Rule) {
		if _, err := rules.Parse(req.Rule); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
		}
	}

	var created *models.TaskRule
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.store.GetTask(ctx, tx, req.TaskNo); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		if req.NextTaskNo != nil {
			if _, err := s.store.GetTask(ctx, tx, *req.NextTaskNo); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrTaskNotFound
				}
				return err
			}
		}

		var err error
		created, err = s.store.CreateTaskRule(ctx, tx, req.TaskNo, req.Rule, req.NextTaskNo, actor.Username)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task rule created", "taskruleno", created.TaskRuleNo, "taskno", created.TaskNo)
	return created, nil
}

func (s *catalogService) ListTaskRules(ctx context.Context) ([]models.TaskRule, error) {
	return s.store.ListTaskRules(ctx, s.store.DB())
}

func (s *catalogService) CreateProcessDataType(ctx context.Context, req *models.CreateProcessDataTypeRequest) (*models.ProcessDataType, error) {
	actor, ok := services.ActorFromContext(ctx)
	if !ok {
		return nil, services.ErrForbidden
	}

	var created *models.ProcessDataType
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		created, err = s.store.CreateProcessDataType(ctx, tx, req.Description, actor.Username)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("process data type created", "process_data_type_no", created.ProcessDataTypeNo, "description", created.Description)
	return created, nil
}

func (s *catalogService) ListProcessDataTypes(ctx context.Context) ([]models.ProcessDataType, error) {
	return s.store.ListProcessDataTypes(ctx, s.store.DB())
}
