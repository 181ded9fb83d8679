// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package services

import "errors"

// Shared service errors.
var (
	ErrForbidden     = errors.New("insufficient permissions to perform this action")
	ErrConfiguration = errors.New("required workflow status is not configured")
)

// Error codes for API responses
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInvalidParams = "INVALID_PARAMS"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeConfiguration = "CONFIGURATION_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)
