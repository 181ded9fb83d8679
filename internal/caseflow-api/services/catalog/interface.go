// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// Service defines operations on the workflow catalog: the statuses, process
// types, definitions, tasks, routing rules and data types that cases are
// built from. Catalog writes are an administrative concern.
type Service interface {
	CreateStatus(ctx context.Context, req *models.CreateStatusRequest) (*models.Status, error)
	ListStatuses(ctx context.Context) ([]models.Status, error)

	CreateProcessType(ctx context.Context, req *models.CreateProcessTypeRequest) (*models.ProcessType, error)
	ListProcessTypes(ctx context.Context) ([]models.ProcessType, error)

	// CreateProcessDefinition inserts a definition together with its start
	// task and a placeholder default rule, all in one transaction.
	CreateProcessDefinition(ctx context.Context, req *models.CreateProcessDefinitionRequest) (*models.ProcessDefinition, error)
	ListProcessDefinitions(ctx context.Context) ([]models.ProcessDefinition, error)

	CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)

	CreateTaskRule(ctx context.Context, req *models.CreateTaskRuleRequest) (*models.TaskRule, error)
	ListTaskRules(ctx context.Context) ([]models.TaskRule, error)

	CreateProcessDataType(ctx context.Context, req *models.CreateProcessDataTypeRequest) (*models.ProcessDataType, error)
	ListProcessDataTypes(ctx context.Context) ([]models.ProcessDataType, error)
}
