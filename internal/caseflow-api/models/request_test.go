// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"strings"
	"testing"
)

func TestCreateCaseRequest_Sanitize(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		want     string
	}{
		{
			name:     "No whitespace",
			clientID: "client-42",
			want:     "client-42",
		},
		{
			name:     "Leading whitespace",
			clientID: "  client-42",
			want:     "client-42",
		},
		{
			name:     "Trailing whitespace",
			clientID: "client-42  ",
			want:     "client-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CreateCaseRequest{
				ClientID:   tt.clientID,
				ClientType: "person",
			}
			req.Sanitize()

			if req.ClientID != tt.want {
				t.Errorf("After Sanitize() ClientID = %v, want %v", req.ClientID, tt.want)
			}
		})
	}
}

func TestCreateCaseRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateCaseRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid request",
			req:     CreateCaseRequest{ClientID: "client-42", ClientType: "person", ProcessTypeNo: 1},
			wantErr: false,
		},
		{
			name:    "Missing client id",
			req:     CreateCaseRequest{ClientType: "person", ProcessTypeNo: 1},
			wantErr: true,
			errMsg:  "clientID is required",
		},
		{
			name:    "Missing client type",
			req:     CreateCaseRequest{ClientID: "client-42", ProcessTypeNo: 1},
			wantErr: true,
			errMsg:  "clientType is required",
		},
		{
			name:    "Missing process type",
			req:     CreateCaseRequest{ClientID: "client-42", ClientType: "person"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name:    "Valid request",
			req:     RegisterRequest{Username: "alice", Password: "s3cret-pass"},
			wantErr: false,
		},
		{
			name:    "Username too short",
			req:     RegisterRequest{Username: "al", Password: "s3cret-pass"},
			wantErr: true,
		},
		{
			name:    "Password too short",
			req:     RegisterRequest{Username: "alice", Password: "short"},
			wantErr: true,
		},
		{
			name:    "Missing username",
			req:     RegisterRequest{Password: "s3cret-pass"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateTaskRuleRequest_Validate(t *testing.T) {
	next := 5

	t.Run("valid with next task", func(t *testing.T) {
		req := CreateTaskRuleRequest{TaskNo: 1, Rule: "default", NextTaskNo: &next}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() unexpected error: %v", err)
		}
	})

	t.Run("valid terminating rule", func(t *testing.T) {
		req := CreateTaskRuleRequest{TaskNo: 1, Rule: "default"}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() unexpected error: %v", err)
		}
	})

	t.Run("missing rule text", func(t *testing.T) {
		req := CreateTaskRuleRequest{TaskNo: 1}
		err := req.Validate()
		if err == nil {
			t.Fatal("Validate() expected error for missing rule")
		}
		if !strings.Contains(err.Error(), "rule") {
			t.Errorf("Validate() error should mention rule, got %q", err.Error())
		}
	})
}
