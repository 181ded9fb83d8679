// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// CreateProcessType inserts a new process type and returns the stored row.
func (s *Store) CreateProcessType(ctx context.Context, q sqlx.ExtContext, description, createdBy string) (*models.ProcessType, error) {
	const query = `
		INSERT INTO process_types (description, usrid)
		VALUES ($1, $2)
		RETURNING process_type_no, description, tmstamp, usrid`

	var pt models.ProcessType
	if err := sqlx.GetContext(ctx, q, &pt, query, description, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create process type: %w", err)
	}
	return &pt, nil
}

// ListProcessTypes returns all process types ordered by number.
func (s *Store) ListProcessTypes(ctx context.Context, q sqlx.ExtContext) ([]models.ProcessType, error) {
	const query = `
		SELECT process_type_no, description, tmstamp, usrid
		FROM process_types
		ORDER BY process_type_no`

	var types []models.ProcessType
	if err := sqlx.SelectContext(ctx, q, &types, query); err != nil {
		return nil, fmt.Errorf("failed to list process types: %w", err)
	}
	return types, nil
}

// GetProcessType looks a process type up by number.
func (s *Store) GetProcessType(ctx context.Context, q sqlx.ExtContext, processTypeNo int) (*models.ProcessType, error) {
	const query = `
		SELECT process_type_no, description, tmstamp, usrid
		FROM process_types
		WHERE process_type_no = $1`

	var pt models.ProcessType
	err := sqlx.GetContext(ctx, q, &pt, query, processTypeNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get process type: %w", err)
	}
	return &pt, nil
}

// CreateProcessDefinition inserts a new process definition and returns the
// stored row. The start task is attached later once the task exists.
func (s *Store) CreateProcessDefinition(ctx context.Context, q sqlx.ExtContext, processTypeNo int, description string, version int, isActive bool, createdBy string) (*models.ProcessDefinition, error) {
	const query = `
		INSERT INTO process_definitions (process_type_no, description, version, is_active, usrid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING process_definition_no, process_type_no, description, version, is_active, start_task_no, tmstamp, usrid`

	var def models.ProcessDefinition
	if err := sqlx.GetContext(ctx, q, &def, query, processTypeNo, description, version, isActive, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create process definition: %w", err)
	}
	return &def, nil
}

// ListProcessDefinitions returns all process definitions ordered by number.
func (s *Store) ListProcessDefinitions(ctx context.Context, q sqlx.ExtContext) ([]models.ProcessDefinition, error) {
	const query = `
		SELECT process_definition_no, process_type_no, description, version, is_active, start_task_no, tmstamp, usrid
		FROM process_definitions
		ORDER BY process_definition_no`

	var defs []models.ProcessDefinition
	if err := sqlx.SelectContext(ctx, q, &defs, query); err != nil {
		return nil, fmt.Errorf("failed to list process definitions: %w", err)
	}
	return defs, nil
}

// GetActiveProcessDefinition returns the newest active definition for a
// process type.
func (s *Store) GetActiveProcessDefinition(ctx context.Context, q sqlx.ExtContext, processTypeNo int) (*models.ProcessDefinition, error) {
	const query = `
		SELECT process_definition_no, process_type_no, description, version, is_active, start_task_no, tmstamp, usrid
		FROM process_definitions
		WHERE process_type_no = $1 AND is_active
		ORDER BY version DESC, process_definition_no DESC
		LIMIT 1`

	var def models.ProcessDefinition
	err := sqlx.GetContext(ctx, q, &def, query, processTypeNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active process definition: %w", err)
	}
	return &def, nil
}

// GetProcessDefinition retrieves a process definition by number.
func (s *Store) GetProcessDefinition(ctx context.Context, q sqlx.ExtContext, processDefinitionNo int) (*models.ProcessDefinition, error) {
	const query = `
		SELECT process_definition_no, process_type_no, description, version, is_active, start_task_no, tmstamp, usrid
		FROM process_definitions
		WHERE process_definition_no = $1`

	var def models.ProcessDefinition
	err := sqlx.GetContext(ctx, q, &def, query, processDefinitionNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get process definition: %w", err)
	}
	return &def, nil
}

// SetDefinitionStartTask points a process definition at its start task.
func (s *Store) SetDefinitionStartTask(ctx context.Context, q sqlx.ExtContext, processDefinitionNo, startTaskNo int) error {
	const query = `
		UPDATE process_definitions
		SET start_task_no = $2
		WHERE process_definition_no = $1`

	result, err := q.ExecContext(ctx, query, processDefinitionNo, startTaskNo)
	if err != nil {
		return fmt.Errorf("failed to set definition start task: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateTask inserts a new task and returns the stored row.
func (s *Store) CreateTask(ctx context.Context, q sqlx.ExtContext, processDefinitionNo int, description, reference, createdBy string) (*models.Task, error) {
	const query = `
		INSERT INTO tasks (process_definition_no, description, reference, usrid)
		VALUES ($1, $2, $3, $4)
		RETURNING taskno, process_definition_no, description, reference, tmstamp, usrid`

	var task models.Task
	if err := sqlx.GetContext(ctx, q, &task, query, processDefinitionNo, description, reference, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// ListTasks returns all tasks ordered by number.
func (s *Store) ListTasks(ctx context.Context, q sqlx.ExtContext) ([]models.Task, error) {
	const query = `
		SELECT taskno, process_definition_no, description, reference, tmstamp, usrid
		FROM tasks
		ORDER BY taskno`

	var tasks []models.Task
	if err := sqlx.SelectContext(ctx, q, &tasks, query); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask looks a task up by number.
func (s *Store) GetTask(ctx context.Context, q sqlx.ExtContext, taskNo int) (*models.Task, error) {
	const query = `
		SELECT taskno, process_definition_no, description, reference, tmstamp, usrid
		FROM tasks
		WHERE taskno = $1`

	var task models.Task
	err := sqlx.GetContext(ctx, q, &task, query, taskNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// CreateTaskRule inserts a new task rule and returns the stored row.
func (s *Store) CreateTaskRule(ctx context.Context, q sqlx.ExtContext, taskNo int, rule string, nextTaskNo *int, createdBy string) (*models.TaskRule, error) {
	const query = `
		INSERT INTO task_rules (taskno, rule, next_task_no, usrid)
		VALUES ($1, $2, $3, $4)
		RETURNING taskruleno, taskno, rule, next_task_no, tmstamp, usrid`

	var tr models.TaskRule
	if err := sqlx.GetContext(ctx, q, &tr, query, taskNo, rule, nextTaskNo, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create task rule: %w", err)
	}
	return &tr, nil
}

// ListTaskRules returns all task rules ordered by number.
func (s *Store) ListTaskRules(ctx context.Context, q sqlx.ExtContext) ([]models.TaskRule, error) {
	const query = `
		SELECT taskruleno, taskno, rule, next_task_no, tmstamp, usrid
		FROM task_rules
		ORDER BY taskruleno`

	var rules []models.TaskRule
	if err := sqlx.SelectContext(ctx, q, &rules, query); err != nil {
		return nil, fmt.Errorf("failed to list task rules: %w", err)
	}
	return rules, nil
}

// ListTaskRulesByTask returns the rules for one task in creation order, which
// is the order they are evaluated in.
func (s *Store) ListTaskRulesByTask(ctx context.Context, q sqlx.ExtContext, taskNo int) ([]models.TaskRule, error) {
	const query = `
		SELECT taskruleno, taskno, rule, next_task_no, tmstamp, usrid
		FROM task_rules
		WHERE taskno = $1
		ORDER BY taskruleno`

	var rules []models.TaskRule
	if err := sqlx.SelectContext(ctx, q, &rules, query, taskNo); err != nil {
		return nil, fmt.Errorf("failed to list task rules: %w", err)
	}
	return rules, nil
}

// CreateProcessDataType inserts a new process data type and returns the
// stored row.
func (s *Store) CreateProcessDataType(ctx context.Context, q sqlx.ExtContext, description, createdBy string) (*models.ProcessDataType, error) {
	const query = `
		INSERT INTO process_data_types (description, usrid)
		VALUES ($1, $2)
		RETURNING process_data_type_no, description, tmstamp, usrid`

	var pdt models.ProcessDataType
	if err := sqlx.GetContext(ctx, q, &pdt, query, description, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create process data type: %w", err)
	}
	return &pdt, nil
}

// ListProcessDataTypes returns all process data types ordered by number.
func (s *Store) ListProcessDataTypes(ctx context.Context, q sqlx.ExtContext) ([]models.ProcessDataType, error) {
	const query = `
		SELECT process_data_type_no, description, tmstamp, usrid
		FROM process_data_types
		ORDER BY process_data_type_no`

	var types []models.ProcessDataType
	if err := sqlx.SelectContext(ctx, q, &types, query); err != nil {
		return nil, fmt.Errorf("failed to list process data types: %w", err)
	}
	return types, nil
}

// GetProcessDataType looks a process data type up by number.
func (s *Store) GetProcessDataType(ctx context.Context, q sqlx.ExtContext, processDataTypeNo int) (*models.ProcessDataType, error) {
	const query = `
		SELECT process_data_type_no, description, tmstamp, usrid
		FROM process_data_types
		WHERE process_data_type_no = $1`

	var pdt models.ProcessDataType
	err := sqlx.GetContext(ctx, q, &pdt, query, processDataTypeNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get process data type: %w", err)
	}
	return &pdt, nil
}
