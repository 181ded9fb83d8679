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

// CreateProcess inserts a new process in the given status and returns the
// stored row.
func (s *Store) CreateProcess(ctx context.Context, q sqlx.ExtContext, caseNo, processTypeNo, statusNo int, createdBy string) (*models.Process, error) {
	const query = `
		INSERT INTO processes (case_no, process_type_no, status_no, usrid)
		VALUES ($1, $2, $3, $4)
		RETURNING processno, case_no, process_type_no, status_no, date_started, date_ended, tmstamp, usrid`

	var p models.Process
	if err := sqlx.GetContext(ctx, q, &p, query, caseNo, processTypeNo, statusNo, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create process: %w", err)
	}
	return &p, nil
}

// GetProcess looks a process up by number.
func (s *Store) GetProcess(ctx context.Context, q sqlx.ExtContext, processNo int) (*models.Process, error) {
	const query = `
		SELECT processno, case_no, process_type_no, status_no, date_started, date_ended, tmstamp, usrid
		FROM processes
		WHERE processno = $1`

	var p models.Process
	err := sqlx.GetContext(ctx, q, &p, query, processNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get process: %w", err)
	}
	return &p, nil
}

// ListProcesses returns all processes ordered by number.
func (s *Store) ListProcesses(ctx context.Context, q sqlx.ExtContext) ([]models.Process, error) {
	const query = `
		SELECT processno, case_no, process_type_no, status_no, date_started, date_ended, tmstamp, usrid
		FROM processes
		ORDER BY processno`

	var processes []models.Process
	if err := sqlx.SelectContext(ctx, q, &processes, query); err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return processes, nil
}

// ListProcessesByCase returns the processes attached to one case.
func (s *Store) ListProcessesByCase(ctx context.Context, q sqlx.ExtContext, caseNo int) ([]models.Process, error) {
	const query = `
		SELECT processno, case_no, process_type_no, status_no, date_started, date_ended, tmstamp, usrid
		FROM processes
		WHERE case_no = $1
		ORDER BY processno`

	var processes []models.Process
	if err := sqlx.SelectContext(ctx, q, &processes, query, caseNo); err != nil {
		return nil, fmt.Errorf("failed to list processes for case: %w", err)
	}
	return processes, nil
}

// CompleteProcess marks a process complete and stamps its end date.
func (s *Store) CompleteProcess(ctx context.Context, q sqlx.ExtContext, processNo, completeStatusNo int) error {
	const query = `
		UPDATE processes
		SET status_no = $2, date_ended = now()
		WHERE processno = $1`

	result, err := q.ExecContext(ctx, query, processNo, completeStatusNo)
	if err != nil {
		return fmt.Errorf("failed to complete process: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CaseOwnerForProcess returns the username that created the case a process
// belongs to.
func (s *Store) CaseOwnerForProcess(ctx context.Context, q sqlx.ExtContext, processNo int) (string, error) {
	const query = `
		SELECT c.usrid
		FROM processes p
		JOIN cases c ON c.caseno = p.case_no
		WHERE p.processno = $1`

	var owner string
	err := sqlx.GetContext(ctx, q, &owner, query, processNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve process owner: %w", err)
	}
	return owner, nil
}
