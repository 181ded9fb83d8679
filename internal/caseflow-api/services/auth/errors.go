// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
)
