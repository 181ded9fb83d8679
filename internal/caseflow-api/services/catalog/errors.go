// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import "errors"

var (
	// ErrStatusExists is returned when a status with the same description
	// already exists.
	ErrStatusExists = errors.New("status already exists")

	// ErrProcessTypeNotFound is returned when the referenced process type
	// does not exist.
	ErrProcessTypeNotFound = errors.New("process type not found")

	// ErrDefinitionNotFound is returned when the referenced process
	// definition does not exist.
	ErrDefinitionNotFound = errors.New("process definition not found")

	// ErrTaskNotFound is returned when a referenced task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidRule is returned when a task rule's expression does not
	// parse. The parse failure is attached as the cause.
	ErrInvalidRule = errors.New("invalid rule expression")
)
