// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processdata

import "errors"

var (
	// ErrProcessNotFound is returned when the target process does not exist.
	ErrProcessNotFound = errors.New("process not found")

	// ErrDataTypeNotFound is returned when the requested process data type
	// does not exist.
	ErrDataTypeNotFound = errors.New("process data type not found")
)
