// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	claimsContextKey contextKey = "jwt_claims"
	tokenContextKey  contextKey = "jwt_token"
)

// GetClaims retrieves the validated JWT claims from the context.
// Returns false if the request was not authenticated.
func GetClaims(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(jwt.MapClaims)
	return claims, ok
}

// GetToken retrieves the raw JWT token string from the context.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// Subject returns the "sub" claim of the authenticated caller.
// Returns false if the request was not authenticated or the claim is absent.
func Subject(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
