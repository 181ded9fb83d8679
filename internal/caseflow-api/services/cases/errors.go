// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package cases

import "errors"

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrNoActiveDefinition = errors.New("active process definition for this type not found")
	ErrNoBusyStep         = errors.New("no busy step found for this case")
)
