// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package cases

import (
	"context"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// Service defines the case operations.
// Both the core service (no authz) and the authz-wrapped service implement this.
type Service interface {
	// CreateCase opens a case and, in the same transaction, starts a process
	// of the requested type with its initial step.
	CreateCase(ctx context.Context, req *models.CreateCaseRequest) (*models.Case, error)
	// GetCase returns one case. Non-admins only see their own cases; other
	// cases answer not-found.
	GetCase(ctx context.Context, caseNo int) (*models.Case, error)
	// ListCases returns the caller's cases, or every case for admins.
	ListCases(ctx context.Context) ([]models.Case, error)
	// GetCurrentStep returns the latest busy step across the case's processes.
	GetCurrentStep(ctx context.Context, caseNo int) (*models.Step, error)
	// ListCaseSteps returns the case's step history in start order.
	ListCaseSteps(ctx context.Context, caseNo int) ([]models.Step, error)
	// ListCaseProcessData returns the data recorded against the case's
	// processes in creation order.
	ListCaseProcessData(ctx context.Context, caseNo int) ([]models.ProcessData, error)
}
