// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Status is a catalog row naming a lifecycle state for processes and steps.
// The engine requires rows described "busy" and "complete" to exist.
type Status struct {
	StatusNo    int       `db:"statusno" json:"statusno"`
	Description string    `db:"description" json:"description"`
	Timestamp   time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy   string    `db:"usrid" json:"usrid"`
}

// ProcessType is a business-level category of work, e.g. "loan application".
type ProcessType struct {
	ProcessTypeNo int       `db:"process_type_no" json:"process_type_no"`
	Description   string    `db:"description" json:"description"`
	Timestamp     time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy     string    `db:"usrid" json:"usrid"`
}

// ProcessDefinition is a versioned workflow blueprint for a process type.
// StartTaskNo references the task every new process begins on.
type ProcessDefinition struct {
	ProcessDefinitionNo int       `db:"process_definition_no" json:"process_definition_no"`
	ProcessTypeNo       int       `db:"process_type_no" json:"process_type_no"`
	Description         string    `db:"description" json:"description"`
	Version             int       `db:"version" json:"version"`
	IsActive            bool      `db:"is_active" json:"is_active"`
	StartTaskNo         *int      `db:"start_task_no" json:"start_task_no"`
	Timestamp           time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy           string    `db:"usrid" json:"usrid"`
}

// Task is a unit of work within a process definition.
type Task struct {
	TaskNo              int       `db:"taskno" json:"taskno"`
	ProcessDefinitionNo int       `db:"process_definition_no" json:"process_definition_no"`
	Description         string    `db:"description" json:"description"`
	Reference           string    `db:"reference" json:"reference"`
	Timestamp           time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy           string    `db:"usrid" json:"usrid"`
}

// TaskRule is a directed edge out of a task. Rule holds either a boolean
// expression over process data or the literal "default". A NULL NextTaskNo
// terminates the process when the rule is selected.
type TaskRule struct {
	TaskRuleNo int       `db:"taskruleno" json:"taskruleno"`
	TaskNo     int       `db:"taskno" json:"taskno"`
	Rule       string    `db:"rule" json:"rule"`
	NextTaskNo *int      `db:"next_task_no" json:"next_task_no"`
	Timestamp  time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy  string    `db:"usrid" json:"usrid"`
}

// ProcessDataType names a category of process data referenced by rules.
type ProcessDataType struct {
	ProcessDataTypeNo int       `db:"process_data_type_no" json:"process_data_type_no"`
	Description       string    `db:"description" json:"description"`
	Timestamp         time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy         string    `db:"usrid" json:"usrid"`
}

// Case is a client matter that workflows run against.
type Case struct {
	CaseNo      int       `db:"caseno" json:"caseno"`
	ClientID    string    `db:"client_id" json:"client_id"`
	ClientType  string    `db:"client_type" json:"client_type"`
	DateCreated time.Time `db:"date_created" json:"date_created"`
	Timestamp   time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy   string    `db:"usrid" json:"usrid"`
}

// Process is a running instance of a process type attached to a case.
type Process struct {
	ProcessNo     int        `db:"processno" json:"processno"`
	CaseNo        int        `db:"case_no" json:"case_no"`
	ProcessTypeNo int        `db:"process_type_no" json:"process_type_no"`
	StatusNo      int        `db:"status_no" json:"status_no"`
	DateStarted   time.Time  `db:"date_started" json:"date_started"`
	DateEnded     *time.Time `db:"date_ended" json:"date_ended"`
	Timestamp     time.Time  `db:"tmstamp" json:"tmstamp"`
	CreatedBy     string     `db:"usrid" json:"usrid"`
}

// Step is one task execution within a process. Exactly one busy step exists
// per busy process.
type Step struct {
	StepNo      int        `db:"stepno" json:"stepno"`
	ProcessNo   int        `db:"processno" json:"processno"`
	TaskNo      int        `db:"taskno" json:"taskno"`
	StatusNo    int        `db:"status_no" json:"status_no"`
	DateStarted time.Time  `db:"date_started" json:"date_started"`
	DateEnded   *time.Time `db:"date_ended" json:"date_ended"`
	Timestamp   time.Time  `db:"tmstamp" json:"tmstamp"`
	CreatedBy   string     `db:"usrid" json:"usrid"`
}

// ProcessData is an untyped string value attached to a process, identified
// for rule lookups by its data type description and field name.
type ProcessData struct {
	ProcessDataNo     int       `db:"process_data_no" json:"process_data_no"`
	ProcessNo         int       `db:"processno" json:"processno"`
	ProcessDataTypeNo int       `db:"process_data_type_no" json:"process_data_type_no"`
	Fieldname         string    `db:"fieldname" json:"fieldname"`
	Value             string    `db:"value" json:"value"`
	Timestamp         time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy         string    `db:"usrid" json:"usrid"`
}

// User is a registered account. The hashed password never leaves the server.
type User struct {
	UserID         int       `db:"userid" json:"userid"`
	Username       string    `db:"username" json:"username"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	Role           string    `db:"role" json:"role"`
	Timestamp      time.Time `db:"tmstamp" json:"tmstamp"`
	CreatedBy      string    `db:"usrid" json:"usrid"`
}
