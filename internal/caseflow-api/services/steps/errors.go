// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package steps

import "errors"

var (
	ErrStepNotFound  = errors.New("step not found")
	ErrStepNotBusy   = errors.New("step is not busy")
	ErrNoRuleMatched = errors.New("no matching rule and no default task found")
)
