// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator for request structs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs tag validation and converts the first failure into a
// readable error.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", fieldName(fe))
		case "min":
			return fmt.Errorf("%s must be at least %s", fieldName(fe), fe.Param())
		case "max":
			return fmt.Errorf("%s must be at most %s", fieldName(fe), fe.Param())
		case "gt":
			return fmt.Errorf("%s must be greater than %s", fieldName(fe), fe.Param())
		default:
			return fmt.Errorf("%s is invalid", fieldName(fe))
		}
	}
	return err
}

// fieldName lowercases the leading character so errors read like JSON keys.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// RegisterRequest represents the request to register a new user account.
// Role is accepted for wire compatibility but never honored: the first
// registered user becomes admin and everyone after is a regular user.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role,omitempty"`
}

// Sanitize trims surrounding whitespace from the username.
func (req *RegisterRequest) Sanitize() {
	req.Username = strings.TrimSpace(req.Username)
}

// Validate validates the RegisterRequest.
func (req *RegisterRequest) Validate() error {
	return validateStruct(req)
}

// CreateCaseRequest represents the request to open a new case. The process
// type selects which workflow definition the initial process runs on.
type CreateCaseRequest struct {
	ClientID      string `json:"client_id" validate:"required"`
	ClientType    string `json:"client_type" validate:"required"`
	ProcessTypeNo int    `json:"process_type_no" validate:"required,gt=0"`
}

// Sanitize trims surrounding whitespace from string fields.
func (req *CreateCaseRequest) Sanitize() {
	req.ClientID = strings.TrimSpace(req.ClientID)
	req.ClientType = strings.TrimSpace(req.ClientType)
}

// Validate validates the CreateCaseRequest.
func (req *CreateCaseRequest) Validate() error {
	return validateStruct(req)
}

// CloseStepRequest represents the request to close a busy step.
// RuleData is an opaque extension point; rule evaluation currently reads
// the stored process data instead.
type CloseStepRequest struct {
	RuleData map[string]string `json:"rule_data"`
}

// Sanitize is a no-op for CloseStepRequest; the payload is opaque.
func (req *CloseStepRequest) Sanitize() {}

// Validate validates the CloseStepRequest.
func (req *CloseStepRequest) Validate() error {
	return nil
}

// CreateProcessRequest represents the request to start a process directly
// on an existing case.
type CreateProcessRequest struct {
	CaseNo        int `json:"case_no" validate:"required,gt=0"`
	ProcessTypeNo int `json:"process_type_no" validate:"required,gt=0"`
}

// Sanitize is a no-op for CreateProcessRequest.
func (req *CreateProcessRequest) Sanitize() {}

// Validate validates the CreateProcessRequest.
func (req *CreateProcessRequest) Validate() error {
	return validateStruct(req)
}

// CreateProcessDataRequest represents the request to attach a data value
// to a process.
type CreateProcessDataRequest struct {
	ProcessDataTypeNo int    `json:"process_data_type_no" validate:"required,gt=0"`
	Fieldname         string `json:"fieldname" validate:"required"`
	Value             string `json:"value"`
}

// Sanitize trims surrounding whitespace from the field name.
func (req *CreateProcessDataRequest) Sanitize() {
	req.Fieldname = strings.TrimSpace(req.Fieldname)
}

// Validate validates the CreateProcessDataRequest.
func (req *CreateProcessDataRequest) Validate() error {
	return validateStruct(req)
}

// CreateStatusRequest represents the request to add a status to the catalog.
type CreateStatusRequest struct {
	Description string `json:"description" validate:"required"`
}

// Sanitize trims surrounding whitespace from the description.
func (req *CreateStatusRequest) Sanitize() {
	req.Description = strings.TrimSpace(req.Description)
}

// Validate validates the CreateStatusRequest.
func (req *CreateStatusRequest) Validate() error {
	return validateStruct(req)
}

// CreateProcessTypeRequest represents the request to add a process type.
type CreateProcessTypeRequest struct {
	Description string `json:"description" validate:"required"`
}

// Sanitize trims surrounding whitespace from the description.
func (req *CreateProcessTypeRequest) Sanitize() {
	req.Description = strings.TrimSpace(req.Description)
}

// Validate validates the CreateProcessTypeRequest.
func (req *CreateProcessTypeRequest) Validate() error {
	return validateStruct(req)
}

// CreateProcessDefinitionRequest represents the request to add a workflow
// blueprint. A start task is materialized from StartTaskDescription and
// wired with a self-referential default rule that admins edit afterwards.
type CreateProcessDefinitionRequest struct {
	ProcessTypeNo        int    `json:"process_type_no" validate:"required,gt=0"`
	Description          string `json:"description" validate:"required"`
	StartTaskDescription string `json:"start_task_description" validate:"required"`
	StartTaskReference   string `json:"start_task_reference"`
}

// Sanitize trims surrounding whitespace from string fields.
func (req *CreateProcessDefinitionRequest) Sanitize() {
	req.Description = strings.TrimSpace(req.Description)
	req.StartTaskDescription = strings.TrimSpace(req.StartTaskDescription)
	req.StartTaskReference = strings.TrimSpace(req.StartTaskReference)
}

// Validate validates the CreateProcessDefinitionRequest.
func (req *CreateProcessDefinitionRequest) Validate() error {
	return validateStruct(req)
}

// CreateTaskRequest represents the request to add a task to a definition.
type CreateTaskRequest struct {
	ProcessDefinitionNo int    `json:"process_definition_no" validate:"required,gt=0"`
	Description         string `json:"description" validate:"required"`
	Reference           string `json:"reference"`
}

// Sanitize trims surrounding whitespace from string fields.
func (req *CreateTaskRequest) Sanitize() {
	req.Description = strings.TrimSpace(req.Description)
	req.Reference = strings.TrimSpace(req.Reference)
}

// Validate validates the CreateTaskRequest.
func (req *CreateTaskRequest) Validate() error {
	return validateStruct(req)
}

// CreateTaskRuleRequest represents the request to add a routing rule to a
// task. A nil NextTaskNo makes the rule terminating.
type CreateTaskRuleRequest struct {
	TaskNo     int    `json:"taskno" validate:"required,gt=0"`
	Rule       string `json:"rule" validate:"required"`
	NextTaskNo *int   `json:"next_task_no"`
}

// Sanitize trims surrounding whitespace from the rule text.
func (req *CreateTaskRuleRequest) Sanitize() {
	req.Rule = strings.TrimSpace(req.Rule)
}

// Validate validates the CreateTaskRuleRequest.
func (req *CreateTaskRuleRequest) Validate() error {
	return validateStruct(req)
}

// CreateProcessDataTypeRequest represents the request to add a process data
// type to the catalog.
type CreateProcessDataTypeRequest struct {
	Description string `json:"description" validate:"required"`
}

// Sanitize trims surrounding whitespace from the description.
func (req *CreateProcessDataTypeRequest) Sanitize() {
	req.Description = strings.TrimSpace(req.Description)
}

// Validate validates the CreateProcessDataTypeRequest.
func (req *CreateProcessDataTypeRequest) Validate() error {
	return validateStruct(req)
}
