// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package jwt provides JWT bearer token authentication middleware.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// Middleware creates a new JWT authentication middleware with the given configuration
func Middleware(config Config) func(http.Handler) http.Handler {
	config.setDefaults()

	// If middleware is disabled, return a passthrough middleware
	if config.Disabled {
		config.Logger.Warn("JWT authentication middleware is DISABLED - all requests will pass through without authentication")
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r)
			})
		}
	}

	// Validate configuration
	if err := config.validate(); err != nil {
		config.Logger.Error("JWT middleware configuration error", "error", err)
		// Return a middleware that always rejects requests with a generic server error
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				config.Logger.Error("JWT middleware configuration error",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
				)
				writeErrorResponse(
					w,
					http.StatusInternalServerError,
					"Server error occurred while authenticating the user",
					"INTERNAL_ERROR",
				)
			})
		}
	}

	// Parse token lookup configuration
	extractor, err := createTokenExtractor(config.TokenLookup)
	if err != nil {
		config.Logger.Error("Invalid TokenLookup configuration", "error", err)
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				config.Logger.Error("Invalid TokenLookup configuration",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
				)
				writeErrorResponse(
					w,
					http.StatusInternalServerError,
					"Server error occurred while authenticating the user",
					"INTERNAL_ERROR",
				)
			})
		}
	}

	var parserOpts []jwt.ParserOption
	if config.ClockSkew > 0 {
		parserOpts = append(parserOpts, jwt.WithLeeway(config.ClockSkew))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from request
			tokenString, err := extractor(r)
			if err != nil {
				if config.Optional {
					next.ServeHTTP(w, r)
					return
				}
				writeErrorResponse(w, http.StatusUnauthorized, ErrMissingToken.Error(), CodeMissingToken)
				return
			}

			// Parse and validate token
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				alg, ok := token.Header["alg"].(string)
				if !ok {
					return nil, errors.New("token missing 'alg' header")
				}

				// Validate algorithm against configured value if specified
				if config.SignatureAlgorithm != "" && alg != config.SignatureAlgorithm {
					return nil, fmt.Errorf(
						"algorithm not allowed: token uses '%s' but only '%s' is accepted",
						alg,
						config.SignatureAlgorithm,
					)
				}

				return config.SigningKey, nil
			}, parserOpts...)

			if err != nil {
				config.Logger.Debug("Token validation failed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
				)
				if config.Optional {
					next.ServeHTTP(w, r)
					return
				}
				writeErrorResponse(w, http.StatusUnauthorized, ErrInvalidToken.Error(), CodeInvalidToken)
				return
			}

			// Extract claims
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				config.Logger.Debug("Invalid token claims",
					"path", r.URL.Path,
					"method", r.Method,
				)
				if config.Optional {
					next.ServeHTTP(w, r)
					return
				}
				writeErrorResponse(w, http.StatusUnauthorized, ErrInvalidClaims.Error(), CodeInvalidClaims)
				return
			}

			// Validate custom claims
			if err := validateClaims(claims, config); err != nil {
				config.Logger.Debug("Token claims validation failed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
				)
				if config.Optional {
					next.ServeHTTP(w, r)
					return
				}
				writeErrorResponse(w, http.StatusUnauthorized, ErrInvalidClaims.Error(), CodeInvalidClaims)
				return
			}

			// Add claims and token to request context
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			ctx = context.WithValue(ctx, tokenContextKey, tokenString)

			config.Logger.Debug("JWT authentication successful",
				"path", r.URL.Path,
				"method", r.Method,
				"subject", claims["sub"],
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateClaims validates custom claims based on configuration
func validateClaims(claims jwt.MapClaims, config Config) error {
	// Validate issuer
	if config.ValidateIssuer != "" {
		iss, ok := claims["iss"].(string)
		if !ok || iss != config.ValidateIssuer {
			return fmt.Errorf("invalid issuer: expected %s", config.ValidateIssuer)
		}
	}

	// Validate audience only if configured
	if config.ValidateAudience != "" {
		aud, ok := claims["aud"]
		if !ok {
			return errors.New("missing audience claim")
		}

		// Audience can be string or []string
		valid := false
		switch v := aud.(type) {
		case string:
			valid = v == config.ValidateAudience
		case []interface{}:
			for _, a := range v {
				if str, ok := a.(string); ok && str == config.ValidateAudience {
					valid = true
					break
				}
			}
		}

		if !valid {
			return fmt.Errorf("invalid audience: expected %s", config.ValidateAudience)
		}
	}

	return nil
}
