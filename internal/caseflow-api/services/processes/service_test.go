// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package processes

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/authz"
	"github.com/caseflow/caseflow/internal/caseflow-api/models"
	"github.com/caseflow/caseflow/internal/caseflow-api/services"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
	"github.com/caseflow/caseflow/internal/server/middleware/auth"
)

const busyStatusNo = 1

var (
	processColumns = []string{"processno", "case_no", "process_type_no", "status_no", "date_started", "date_ended", "tmstamp", "usrid"}
	caseColumns    = []string{"caseno", "client_id", "client_type", "date_created", "tmstamp", "usrid"}
	typeColumns    = []string{"process_type_no", "description", "tmstamp", "usrid"}
	statusColumns  = []string{"statusno", "description", "tmstamp", "usrid"}
)

func newTestService(t *testing.T) (Service, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store.New(db, "", logger), logger), mock
}

func adminContext() context.Context {
	return auth.SetPrincipal(context.Background(), &auth.Principal{Username: "boss", Role: authz.RoleAdmin})
}

func userContext(username string) context.Context {
	return auth.SetPrincipal(context.Background(), &auth.Principal{Username: username, Role: authz.RoleUser})
}

func caseRow(caseNo int, owner string) *sqlmock.Rows {
	return sqlmock.NewRows(caseColumns).
		AddRow(caseNo, "client-1", "person", time.Now(), time.Now(), owner)
}

func processRow(processNo, caseNo int, createdBy string) *sqlmock.Rows {
	return sqlmock.NewRows(processColumns).
		AddRow(processNo, caseNo, 2, busyStatusNo, time.Now(), nil, time.Now(), createdBy)
}

func TestCreateProcess_AttachesToCase(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM cases`)).
		WithArgs(40).
		WillReturnRows(caseRow(40, "alice"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM process_types`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(typeColumns).
			AddRow(2, "onboarding", time.Now(), "boss"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM statuses`)).
		WithArgs(store.StatusBusy).
		WillReturnRows(sqlmock.NewRows(statusColumns).
			AddRow(busyStatusNo, store.StatusBusy, time.Now(), "system"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO processes`)).
		WithArgs(40, 2, busyStatusNo, "boss").
		WillReturnRows(processRow(50, 40, "boss"))
	mock.ExpectCommit()

	req := &models.CreateProcessRequest{CaseNo: 40, ProcessTypeNo: 2}
	created, err := svc.CreateProcess(adminContext(), req)
	require.NoError(t, err)
	assert.Equal(t, 50, created.ProcessNo)
	assert.Equal(t, 40, created.CaseNo)
	assert.Equal(t, busyStatusNo, created.StatusNo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProcess_CaseNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM cases`)).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	req := &models.CreateProcessRequest{CaseNo: 99, ProcessTypeNo: 2}
	_, err := svc.CreateProcess(adminContext(), req)
	require.ErrorIs(t, err, ErrCaseNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProcess_ProcessTypeNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM cases`)).
		WithArgs(40).
		WillReturnRows(caseRow(40, "alice"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM process_types`)).
		WithArgs(7).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	req := &models.CreateProcessRequest{CaseNo: 40, ProcessTypeNo: 7}
	_, err := svc.CreateProcess(adminContext(), req)
	require.ErrorIs(t, err, ErrProcessTypeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProcess_MissingStatusConfiguration(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM cases`)).
		WithArgs(40).
		WillReturnRows(caseRow(40, "alice"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM process_types`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(typeColumns).
			AddRow(2, "onboarding", time.Now(), "boss"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM statuses`)).
		WithArgs(store.StatusBusy).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	req := &models.CreateProcessRequest{CaseNo: 40, ProcessTypeNo: 2}
	_, err := svc.CreateProcess(adminContext(), req)
	require.ErrorIs(t, err, services.ErrConfiguration)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProcess_RequiresActor(t *testing.T) {
	svc, _ := newTestService(t)

	req := &models.CreateProcessRequest{CaseNo: 40, ProcessTypeNo: 2}
	_, err := svc.CreateProcess(context.Background(), req)
	require.ErrorIs(t, err, services.ErrForbidden)
}

func TestListProcesses(t *testing.T) {
	svc, mock := newTestService(t)

	rows := processRow(50, 40, "alice").
		AddRow(51, 41, 2, busyStatusNo, time.Now(), nil, time.Now(), "bob")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM processes`)).
		WillReturnRows(rows)

	processes, err := svc.ListProcesses(context.Background())
	require.NoError(t, err)
	require.Len(t, processes, 2)
	assert.Equal(t, 50, processes[0].ProcessNo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceWithAuthz_AdminOnlyActions(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	enforcer, err := authz.NewEnforcer(logger)
	require.NoError(t, err)

	svc := NewServiceWithAuthz(store.New(db, "", logger), enforcer, logger)

	// Both process actions are reserved for admins
	req := &models.CreateProcessRequest{CaseNo: 40, ProcessTypeNo: 2}
	_, err = svc.CreateProcess(userContext("alice"), req)
	require.ErrorIs(t, err, services.ErrForbidden)

	_, err = svc.ListProcesses(userContext("alice"))
	require.ErrorIs(t, err, services.ErrForbidden)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM processes`)).
		WillReturnRows(sqlmock.NewRows(processColumns))
	_, err = svc.ListProcesses(adminContext())
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
