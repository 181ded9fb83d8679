// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package authz implements role-based permission checks using Casbin.
package authz

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed rbac_model.conf
var embeddedModel string

// Role names known to the enforcer.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// rolePolicies maps each role to the actions it is allowed to perform.
// The admin role additionally inherits every user permission through
// a grouping policy, so only admin-specific actions are listed for it.
var rolePolicies = [][]string{
	{RoleUser, "case:create"},
	{RoleUser, "case:view"},
	{RoleUser, "step:view"},
	{RoleUser, "step:close"},
	{RoleUser, "processdata:view"},
	{RoleUser, "processdata:create"},
	{RoleUser, "processtype:view"},

	{RoleAdmin, "catalog:write"},
	{RoleAdmin, "catalog:view"},
	{RoleAdmin, "step:list"},
	{RoleAdmin, "process:view"},
	{RoleAdmin, "process:create"},
}

// Enforcer answers role/action permission questions.
type Enforcer struct {
	enforcer casbin.IEnforcer
	logger   *slog.Logger
}

// NewEnforcer creates a Casbin enforcer with the embedded model and the
// static role policies loaded.
func NewEnforcer(logger *slog.Logger) (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded casbin model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create synced enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(rolePolicies); err != nil {
		return nil, fmt.Errorf("failed to load role policies: %w", err)
	}

	// Admin inherits all user permissions
	if _, err := enforcer.AddGroupingPolicy(RoleAdmin, RoleUser); err != nil {
		return nil, fmt.Errorf("failed to add role inheritance: %w", err)
	}

	logger.Info("casbin enforcer initialized", "policies", len(rolePolicies))

	return &Enforcer{
		enforcer: enforcer,
		logger:   logger,
	}, nil
}

// CheckPermission reports whether the given role may perform the action.
func (e *Enforcer) CheckPermission(role, action string) (bool, error) {
	allowed, err := e.enforcer.Enforce(role, action)
	if err != nil {
		return false, fmt.Errorf("enforcement failed: %w", err)
	}

	e.logger.Debug("permission evaluated",
		"role", role,
		"action", action,
		"allowed", allowed)

	return allowed, nil
}
