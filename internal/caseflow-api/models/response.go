// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package models

// APIResponse represents a standard API response wrapper
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ListResponse represents a list response with its total count
type ListResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
}

// UserResponse represents a user account in API responses.
type UserResponse struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewUserResponse converts a user entity into its API shape.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// TokenResponse represents an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SuccessResponse builds a success envelope around the payload.
func SuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// ListSuccessResponse builds a success envelope around a list payload.
func ListSuccessResponse[T any](items []T) APIResponse[ListResponse[T]] {
	if items == nil {
		items = []T{}
	}
	return APIResponse[ListResponse[T]]{
		Success: true,
		Data: ListResponse[T]{
			Items:      items,
			TotalCount: len(items),
		},
	}
}

// ErrorResponse builds a failure envelope with a message and error code.
func ErrorResponse(message, code string) APIResponse[any] {
	return APIResponse[any]{
		Success: false,
		Error:   message,
		Code:    code,
	}
}
