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

// CreateStep inserts a new step in the given status and returns the stored
// row.
func (s *Store) CreateStep(ctx context.Context, q sqlx.ExtContext, processNo, taskNo, statusNo int, createdBy string) (*models.Step, error) {
	const query = `
		INSERT INTO steps (processno, taskno, status_no, usrid)
		VALUES ($1, $2, $3, $4)
		RETURNING stepno, processno, taskno, status_no, date_started, date_ended, tmstamp, usrid`

	var step models.Step
	if err := sqlx.GetContext(ctx, q, &step, query, processNo, taskNo, statusNo, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create step: %w", err)
	}
	return &step, nil
}

// GetStep looks a step up by number.
func (s *Store) GetStep(ctx context.Context, q sqlx.ExtContext, stepNo int) (*models.Step, error) {
	const query = `
		SELECT stepno, processno, taskno, status_no, date_started, date_ended, tmstamp, usrid
		FROM steps
		WHERE stepno = $1`

	var step models.Step
	err := sqlx.GetContext(ctx, q, &step, query, stepNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return &step, nil
}

// GetStepForUpdate fetches a step with a row lock so concurrent closes of the
// same step serialize inside their transactions.
func (s *Store) GetStepForUpdate(ctx context.Context, q sqlx.ExtContext, stepNo int) (*models.Step, error) {
	const query = `
		SELECT stepno, processno, taskno, status_no, date_started, date_ended, tmstamp, usrid
		FROM steps
		WHERE stepno = $1
		FOR UPDATE`

	var step models.Step
	err := sqlx.GetContext(ctx, q, &step, query, stepNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock step: %w", err)
	}
	return &step, nil
}

// CompleteStep marks a step complete, stamps its end date, and returns the
// updated row.
func (s *Store) CompleteStep(ctx context.Context, q sqlx.ExtContext, stepNo, completeStatusNo int) (*models.Step, error) {
	const query = `
		UPDATE steps
		SET status_no = $2, date_ended = now()
		WHERE stepno = $1
		RETURNING stepno, processno, taskno, status_no, date_started, date_ended, tmstamp, usrid`

	var step models.Step
	err := sqlx.GetContext(ctx, q, &step, query, stepNo, completeStatusNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete step: %w", err)
	}
	return &step, nil
}

// ListSteps returns all steps in start order.
func (s *Store) ListSteps(ctx context.Context, q sqlx.ExtContext) ([]models.Step, error) {
	const query = `
		SELECT stepno, processno, taskno, status_no, date_started, date_ended, tmstamp, usrid
		FROM steps
		ORDER BY date_started, stepno`

	var steps []models.Step
	if err := sqlx.SelectContext(ctx, q, &steps, query); err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// ListStepsByCase returns the step history across every process of a case in
// start order.
func (s *Store) ListStepsByCase(ctx context.Context, q sqlx.ExtContext, caseNo int) ([]models.Step, error) {
	const query = `
		SELECT st.stepno, st.processno, st.taskno, st.status_no, st.date_started, st.date_ended, st.tmstamp, st.usrid
		FROM steps st
		JOIN processes p ON p.processno = st.processno
		WHERE p.case_no = $1
		ORDER BY st.date_started, st.stepno`

	var steps []models.Step
	if err := sqlx.SelectContext(ctx, q, &steps, query, caseNo); err != nil {
		return nil, fmt.Errorf("failed to list steps for case: %w", err)
	}
	return steps, nil
}

// GetCurrentStepByCase returns the most recent busy step across every process
// of a case.
func (s *Store) GetCurrentStepByCase(ctx context.Context, q sqlx.ExtContext, caseNo, busyStatusNo int) (*models.Step, error) {
	const query = `
		SELECT st.stepno, st.processno, st.taskno, st.status_no, st.date_started, st.date_ended, st.tmstamp, st.usrid
		FROM steps st
		JOIN processes p ON p.processno = st.processno
		WHERE p.case_no = $1 AND st.status_no = $2
		ORDER BY st.stepno DESC
		LIMIT 1`

	var step models.Step
	err := sqlx.GetContext(ctx, q, &step, query, caseNo, busyStatusNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get current step: %w", err)
	}
	return &step, nil
}

// CaseOwnerForStep returns the username that created the case a step belongs
// to.
func (s *Store) CaseOwnerForStep(ctx context.Context, q sqlx.ExtContext, stepNo int) (string, error) {
	const query = `
		SELECT c.usrid
		FROM steps st
		JOIN processes p ON p.processno = st.processno
		JOIN cases c ON c.caseno = p.case_no
		WHERE st.stepno = $1`

	var owner string
	err := sqlx.GetContext(ctx, q, &owner, query, stepNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve step owner: %w", err)
	}
	return owner, nil
}
