// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/rules"
)

// CreateProcessData inserts a new process data record and returns the stored
// row.
func (s *Store) CreateProcessData(ctx context.Context, q sqlx.ExtContext, processNo, processDataTypeNo int, fieldname, value, createdBy string) (*models.ProcessData, error) {
	const query = `
		INSERT INTO process_data (processno, process_data_type_no, fieldname, value, usrid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING process_data_no, processno, process_data_type_no, fieldname, value, tmstamp, usrid`

	var pd models.ProcessData
	if err := sqlx.GetContext(ctx, q, &pd, query, processNo, processDataTypeNo, fieldname, value, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create process data: %w", err)
	}
	return &pd, nil
}

// ListProcessData returns process data records ordered by number. An empty
// owner returns every record, otherwise only records for cases created by
// that owner.
func (s *Store) ListProcessData(ctx context.Context, q sqlx.ExtContext, owner string) ([]models.ProcessData, error) {
	query := `
		SELECT pd.process_data_no, pd.processno, pd.process_data_type_no, pd.fieldname, pd.value, pd.tmstamp, pd.usrid
		FROM process_data pd`
	args := []interface{}{}
	if owner != "" {
		query += `
		JOIN processes p ON p.processno = pd.processno
		JOIN cases c ON c.caseno = p.case_no
		WHERE c.usrid = $1`
		args = append(args, owner)
	}
	query += `
		ORDER BY pd.process_data_no`

	var records []models.ProcessData
	if err := sqlx.SelectContext(ctx, q, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list process data: %w", err)
	}
	return records, nil
}

// ListProcessDataByCase returns the data records across every process of a
// case in creation order.
func (s *Store) ListProcessDataByCase(ctx context.Context, q sqlx.ExtContext, caseNo int) ([]models.ProcessData, error) {
	const query = `
		SELECT pd.process_data_no, pd.processno, pd.process_data_type_no, pd.fieldname, pd.value, pd.tmstamp, pd.usrid
		FROM process_data pd
		JOIN processes p ON p.processno = pd.processno
		WHERE p.case_no = $1
		ORDER BY pd.process_data_no`

	var records []models.ProcessData
	if err := sqlx.SelectContext(ctx, q, &records, query, caseNo); err != nil {
		return nil, fmt.Errorf("failed to list process data for case: %w", err)
	}
	return records, nil
}

// LoadRuleSnapshot builds the rule evaluation snapshot for a process. Records
// are keyed by data type description and field name; when a field was written
// more than once the newest record wins.
func (s *Store) LoadRuleSnapshot(ctx context.Context, q sqlx.ExtContext, processNo int) (rules.Snapshot, error) {
	const query = `
		SELECT pdt.description, pd.fieldname, pd.value
		FROM process_data pd
		JOIN process_data_types pdt ON pdt.process_data_type_no = pd.process_data_type_no
		WHERE pd.processno = $1
		ORDER BY pd.process_data_no ASC`

	rows, err := q.QueryxContext(ctx, query, processNo)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := rules.Snapshot{}
	for rows.Next() {
		var typeDesc, fieldname, value string
		if err := rows.Scan(&typeDesc, &fieldname, &value); err != nil {
			return nil, fmt.Errorf("failed to scan rule snapshot row: %w", err)
		}
		snapshot[rules.Key{TypeDesc: typeDesc, Field: fieldname}] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rule snapshot rows: %w", err)
	}
	return snapshot, nil
}
