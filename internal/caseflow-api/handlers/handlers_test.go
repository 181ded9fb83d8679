// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	authsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/auth"
	"github.com/caseflow/caseflow/internal/caseflow-api/services/handlerservices"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

const testSigningKey = "handlers-test-signing-key"

var userColumns = []string{"userid", "username", "hashed_password", "role", "tmstamp", "usrid"}

// newTestServer wires the full handler stack against a mocked database so
// requests exercise the same middleware chain production uses.
func newTestServer(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(db, "", logger)

	enforcer, err := authz.NewEnforcer(logger)
	require.NoError(t, err)

	authCfg := authsvc.Config{
		SigningKey: []byte(testSigningKey),
		Algorithm:  "HS256",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	svcs := handlerservices.NewServices(st, enforcer, authCfg, logger)
	return New(svcs, st, authCfg, logger).Routes(), mock
}

func signToken(t *testing.T, username string) string {
	t.Helper()

	now := time.Now()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub": username,
		"iat": gojwt.NewNumericDate(now),
		"exp": gojwt.NewNumericDate(now.Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return signed
}

// expectUserLookup satisfies the account resolution the identity middleware
// performs for every authenticated request.
func expectUserLookup(mock sqlmock.Sqlmock, username, role string) {
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs(username).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, username, "irrelevant", role, time.Now(), "system"))
}

func doRequest(t *testing.T, handler http.Handler, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse[any] {
	t.Helper()

	var resp models.APIResponse[any]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.False(t, resp.Success)
	return resp
}

func TestRoutes_HealthIsOpen(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRoutes_MetricsExposed(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_MissingTokenRejected(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/cases", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Could not validate credentials", resp.Error)
	assert.Equal(t, services.CodeUnauthorized, resp.Code)
}

func TestRoutes_GarbageTokenRejected(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/cases", "not-a-token", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, services.CodeUnauthorized, resp.Code)
}

func TestRoutes_TokenForMissingAccountRejected(t *testing.T) {
	handler, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	rec := doRequest(t, handler, http.MethodGet, "/cases", signToken(t, "ghost"), nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Could not validate credentials", resp.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoutes_ListCasesScopedToCaller(t *testing.T) {
	handler, mock := newTestServer(t)

	expectUserLookup(mock, "alice", authz.RoleUser)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE usrid = $1`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"caseno", "client_id", "client_type", "date_created", "tmstamp", "usrid"}).
			AddRow(40, "client-1", "person", time.Now(), time.Now(), "alice"))

	rec := doRequest(t, handler, http.MethodGet, "/cases", signToken(t, "alice"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.APIResponse[models.ListResponse[models.Case]]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.TotalCount)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "client-1", resp.Data.Items[0].ClientID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoutes_StepListingIsAdminOnly(t *testing.T) {
	handler, mock := newTestServer(t)

	expectUserLookup(mock, "alice", authz.RoleUser)

	rec := doRequest(t, handler, http.MethodGet, "/steps", signToken(t, "alice"), nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Insufficient permissions", resp.Error)
	assert.Equal(t, services.CodeForbidden, resp.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoutes_PathParameterValidation(t *testing.T) {
	handler, mock := newTestServer(t)

	expectUserLookup(mock, "alice", authz.RoleUser)

	rec := doRequest(t, handler, http.MethodGet, "/cases/not-a-number", signToken(t, "alice"), nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Path parameter caseNo must be an integer", resp.Error)
	assert.Equal(t, services.CodeInvalidParams, resp.Code)
}

func TestCloseStep_AllowsEmptyBody(t *testing.T) {
	handler, mock := newTestServer(t)

	expectUserLookup(mock, "alice", authz.RoleUser)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(7).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	rec := doRequest(t, handler, http.MethodPost, "/steps/7/close", signToken(t, "alice"), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Step not found", resp.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueToken_RequiresCredentials(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Username and password are required", resp.Error)
}

func TestIssueToken_WrongPassword(t *testing.T) {
	handler, mock := newTestServer(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice", string(hashed), authz.RoleUser, time.Now(), "system"))

	form := strings.NewReader("username=alice&password=wrong-password")
	req := httptest.NewRequest(http.MethodPost, "/auth/token", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Incorrect username or password", resp.Error)
	assert.Equal(t, services.CodeUnauthorized, resp.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_WorksWithoutToken(t *testing.T) {
	handler, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("newcomer", sqlmock.AnyArg(), authz.RoleUser, "system").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(4, "newcomer", "hashed", authz.RoleUser, time.Now(), "system"))
	mock.ExpectCommit()

	body := strings.NewReader(`{"username": "newcomer", "password": "long-enough-password"}`)
	rec := doRequest(t, handler, http.MethodPost, "/auth/register", "", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.APIResponse[models.UserResponse]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	assert.Equal(t, "newcomer", resp.Data.Username)
	assert.Equal(t, authz.RoleUser, resp.Data.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	handler, _ := newTestServer(t)

	body := strings.NewReader(`{"username": "newcomer", "password": "short"}`)
	rec := doRequest(t, handler, http.MethodPost, "/auth/register", "", body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, services.CodeInvalidInput, resp.Code)
}
