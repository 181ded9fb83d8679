// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processes

import (
	"context"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// Service defines operations on workflow processes. Processes normally
// come into existence with their case; these operations let operators
// start additional processes and inspect the full process table.
type Service interface {
	// CreateProcess starts a busy process on an existing case. It does not
	// open an initial step; callers start from the process data endpoints.
	CreateProcess(ctx context.Context, req *models.CreateProcessRequest) (*models.Process, error)

	// ListProcesses returns all processes across all cases.
	ListProcesses(ctx context.Context) ([]models.Process, error)
}
