// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-hmac-signing"

// createTestToken creates a JWT token for testing
func createTestToken(claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(testSecret))
	return tokenString
}

func TestMiddleware_Success(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"iss": "test-issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := createTestToken(claims)

	config := Config{
		SigningKey:     []byte(testSecret),
		ValidateIssuer: "test-issuer",
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify claims are in context
		ctxClaims, ok := GetClaims(r.Context())
		if !ok {
			t.Error("Claims not found in context")
			return
		}

		if ctxClaims["sub"] != "alice" {
			t.Errorf("Expected sub claim to be 'alice', got %v", ctxClaims["sub"])
		}

		if sub, ok := Subject(r.Context()); !ok || sub != "alice" {
			t.Errorf("Expected Subject() to return 'alice', got %q (ok=%v)", sub, ok)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestMiddleware_CaseInsensitiveBearerScheme(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := createTestToken(claims)

	config := Config{
		SigningKey: []byte(testSecret),
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	testCases := []struct {
		name   string
		scheme string
	}{
		{"lowercase bearer", "bearer"},
		{"uppercase BEARER", "BEARER"},
		{"mixed case Bearer", "Bearer"},
		{"mixed case BeArEr", "BeArEr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", tc.scheme+" "+token)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200 for scheme '%s', got %d", tc.scheme, w.Code)
			}
		})
	}
}

func TestMiddleware_MissingToken(t *testing.T) {
	config := Config{
		SigningKey: []byte(testSecret),
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be called when token is missing")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	var response map[string]string
	_ = json.NewDecoder(w.Body).Decode(&response)
	if response["error"] != CodeMissingToken {
		t.Errorf("Expected error code %q, got %s", CodeMissingToken, response["error"])
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	config := Config{
		SigningKey: []byte(testSecret),
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be called with invalid token")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid.token.here")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	var response map[string]string
	_ = json.NewDecoder(w.Body).Decode(&response)
	if response["error"] != CodeInvalidToken {
		t.Errorf("Expected error code %q, got %s", CodeInvalidToken, response["error"])
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	}
	token := createTestToken(claims)

	config := Config{
		SigningKey: []byte(testSecret),
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be called with expired token")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestMiddleware_ClockSkewToleratesRecentExpiry(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-30 * time.Second).Unix(),
		"iat": time.Now().Add(-time.Hour).Unix(),
	}
	token := createTestToken(claims)

	config := Config{
		SigningKey: []byte(testSecret),
		ClockSkew:  2 * time.Minute,
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 within clock skew, got %d", w.Code)
	}
}

func TestMiddleware_WrongSignatureAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	tokenString, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	config := Config{
		SigningKey:         []byte(testSecret),
		SignatureAlgorithm: "HS256",
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be called with disallowed algorithm")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestMiddleware_WrongIssuer(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"iss": "other-issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := createTestToken(claims)

	config := Config{
		SigningKey:     []byte(testSecret),
		ValidateIssuer: "test-issuer",
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be called with wrong issuer")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	var response map[string]string
	_ = json.NewDecoder(w.Body).Decode(&response)
	if response["error"] != CodeInvalidClaims {
		t.Errorf("Expected error code %q, got %s", CodeInvalidClaims, response["error"])
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	config := Config{
		Disabled: true,
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 with disabled middleware, got %d", w.Code)
	}
}

func TestMiddleware_OptionalMissingTokenPassesThrough(t *testing.T) {
	config := Config{
		SigningKey: []byte(testSecret),
		Optional:   true,
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); ok {
			t.Error("Claims should not be set for anonymous request")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for optional auth without token, got %d", w.Code)
	}
}

func TestMiddleware_OptionalInvalidTokenPassesThrough(t *testing.T) {
	config := Config{
		SigningKey: []byte(testSecret),
		Optional:   true,
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); ok {
			t.Error("Claims should not be set for invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for optional auth with invalid token, got %d", w.Code)
	}
}

func TestMiddleware_OptionalValidTokenSetsClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := createTestToken(claims)

	config := Config{
		SigningKey: []byte(testSecret),
		Optional:   true,
	}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, ok := Subject(r.Context())
		if !ok || sub != "alice" {
			t.Errorf("Expected subject 'alice', got %q (ok=%v)", sub, ok)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestMiddleware_MissingSigningKey(t *testing.T) {
	config := Config{}

	middleware := Middleware(config)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be called with invalid configuration")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 for misconfigured middleware, got %d", w.Code)
	}
}
