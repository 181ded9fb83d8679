// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import "errors"

// Authentication errors returned to clients.
var (
	ErrMissingToken  = errors.New("Authentication token is missing")
	ErrInvalidToken  = errors.New("Authentication token is invalid")
	ErrInvalidClaims = errors.New("Authentication token claims are invalid")
)

// Error codes used in error responses.
const (
	CodeMissingToken  = "MISSING_TOKEN"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeInvalidClaims = "INVALID_CLAIMS"
)
