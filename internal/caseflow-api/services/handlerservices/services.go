// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package handlerservices aggregates the domain services into the single
// dependency the HTTP handlers take. It sits outside the services package
// so the service subpackages can share types from it without a cycle.
package handlerservices

import (
	"log/slog"

	"github.com/caseflow/caseflow/internal/authz"
	authsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/auth"
	casesvc "github.com/caseflow/caseflow/internal/caseflow-api/services/cases"
	catalogsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/catalog"
	processsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/processes"
	processdatasvc "github.com/caseflow/caseflow/internal/caseflow-api/services/processdata"
	stepsvc "github.com/caseflow/caseflow/internal/caseflow-api/services/steps"
	"github.com/caseflow/caseflow/internal/caseflow-api/store"
)

// Services holds the domain services consumed by the HTTP handlers.
type Services struct {
	Auth        authsvc.Service
	Cases       casesvc.Service
	Steps       stepsvc.Service
	Processes   processsvc.Service
	ProcessData processdatasvc.Service
	Catalog     catalogsvc.Service
}

// NewServices wires every domain service with authorization enabled. The
// auth service carries no authorization wrapper since registration and
// token issuance happen before a caller has an identity.
func NewServices(st *store.Store, enforcer *authz.Enforcer, authCfg authsvc.Config, logger *slog.Logger) *Services {
	return &Services{
		Auth:        authsvc.NewService(st, authCfg, logger.With("service", "auth")),
		Cases:       casesvc.NewServiceWithAuthz(st, enforcer, logger.With("service", "cases")),
		Steps:       stepsvc.NewServiceWithAuthz(st, enforcer, logger.With("service", "steps")),
		Processes:   processsvc.NewServiceWithAuthz(st, enforcer, logger.With("service", "processes")),
		ProcessData: processdatasvc.NewServiceWithAuthz(st, enforcer, logger.With("service", "processdata")),
		Catalog:     catalogsvc.NewServiceWithAuthz(st, enforcer, logger.With("service", "catalog")),
	}
}
