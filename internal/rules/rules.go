// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package rules implements the task rule expression language evaluated
// against the process data of a running process.
//
// A rule is either the literal sentinel "default" or a boolean expression
// over process data lookups:
//
//	procdata.amount.total == "100" && (procdata.flag.urgent == yes || procdata.flag.vip == true)
//
// Comparisons reference a process data row by the description of its data
// type and its field name. Values compare as strings; a missing row makes
// the comparison false for both == and !=.
package rules

import "strings"

// DefaultRule is the sentinel rule text used for fallback task selection.
const DefaultRule = "default"

// IsDefault reports whether the rule text is the fallback sentinel.
func IsDefault(rule string) bool {
	return strings.TrimSpace(rule) == DefaultRule
}

// Data resolves process data lookups during evaluation.
type Data interface {
	// Lookup returns the value for the given data type description and
	// field name, and whether such a row exists.
	Lookup(typeDesc, field string) (string, bool)
}

// Key identifies a process data value by type description and field name.
type Key struct {
	TypeDesc string
	Field    string
}

// Snapshot is an in-memory Data implementation. When a process carries
// multiple rows for the same key, the caller must store the row with the
// highest process_data_no.
type Snapshot map[Key]string

// Lookup implements Data.
func (s Snapshot) Lookup(typeDesc, field string) (string, bool) {
	v, ok := s[Key{TypeDesc: typeDesc, Field: field}]
	return v, ok
}

// Operator is a comparison operator in a rule leaf.
type Operator string

// Supported comparison operators.
const (
	OpEqual    Operator = "=="
	OpNotEqual Operator = "!="
)

// Expr is a parsed rule expression.
type Expr interface {
	Eval(data Data) bool
}

// comparison is a single procdata lookup compared against a literal value.
type comparison struct {
	typeDesc string
	field    string
	op       Operator
	value    string
}

func (c *comparison) Eval(data Data) bool {
	v, ok := data.Lookup(c.typeDesc, c.field)
	if !ok {
		// No value, no match: != does not match missing data either
		return false
	}
	switch c.op {
	case OpEqual:
		return v == c.value
	case OpNotEqual:
		return v != c.value
	}
	return false
}

// defaultTerm is the "default" sentinel appearing inside an expression.
// It never matches; fallback selection happens outside the evaluator.
type defaultTerm struct{}

func (defaultTerm) Eval(Data) bool { return false }

type andExpr struct {
	left, right Expr
}

func (e *andExpr) Eval(data Data) bool {
	return e.left.Eval(data) && e.right.Eval(data)
}

type orExpr struct {
	left, right Expr
}

func (e *orExpr) Eval(data Data) bool {
	return e.left.Eval(data) || e.right.Eval(data)
}

// Evaluate parses the rule text and evaluates it against the given data.
// A parse failure is returned as an error; callers that want the lenient
// "malformed rules never match" behavior treat the error as false.
func Evaluate(rule string, data Data) (bool, error) {
	expr, err := Parse(rule)
	if err != nil {
		return false, err
	}
	return expr.Eval(data), nil
}
