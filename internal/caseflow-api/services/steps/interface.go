// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/caseflow/caseflow/internal/caseflow-api/models"
)

// Service defines the step operations.
// Both the core service (no authz) and the authz-wrapped service implement this.
type Service interface {
	// CloseStep completes a busy step, evaluates its task's rules against the
	// process data, and either starts the next step or completes the process.
	// It returns the new busy step, or the closed step when the process ended.
	// ruleData is accepted for callers that want to pass transient hints; rule
	// evaluation reads only stored process data.
	CloseStep(ctx context.Context, stepNo int, ruleData map[string]string) (*models.Step, error)
	// ListSteps returns every step in the system in start order.
	ListSteps(ctx context.Context) ([]models.Step, error)
}
