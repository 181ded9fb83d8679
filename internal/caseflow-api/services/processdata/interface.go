// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processdata

import (
	"context"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// Service defines operations on process data, the key/value facts that
// drive rule evaluation when steps close.
type Service interface {
	// CreateProcessData attaches a data value to a process. Non-admin
	// callers may only write to processes on their own cases.
	CreateProcessData(ctx context.Context, processNo int, req *models.CreateProcessDataRequest) (*models.ProcessData, error)

	// ListProcessData returns process data visible to the caller. Admins
	// see everything, other callers only data on their own cases.
	ListProcessData(ctx context.Context) ([]models.ProcessData, error)
}
