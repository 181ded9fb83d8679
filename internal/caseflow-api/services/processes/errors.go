// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processes

import "errors"

var (
	// ErrCaseNotFound is returned when the target case does not exist.
	ErrCaseNotFound = errors.New("case not found")

	// ErrProcessTypeNotFound is returned when the requested process type
	// does not exist.
	ErrProcessTypeNotFound = errors.New("process type not found")
)
