// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package rules

import "testing"

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		rule string
	}{
		{"empty rule", ""},
		{"whitespace only", "   "},
		{"not a comparison", "amount.total == 100"},
		{"missing value", "procdata.amount.total =="},
		{"missing operator", "procdata.amount.total 100"},
		{"unsupported operator", "procdata.amount.total > 100"},
		{"dangling and", "procdata.amount.total == 100 &&"},
		{"leading or", "|| procdata.amount.total == 100"},
		{"unbalanced open paren", "(procdata.amount.total == 100"},
		{"unbalanced close paren", "procdata.amount.total == 100)"},
		{"unterminated quote", `procdata.amount.total == "100`},
		{"empty parens", "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.rule); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", tt.rule)
			}
		})
	}
}

func TestParse_ValidExpressions(t *testing.T) {
	tests := []string{
		"default",
		"  default  ",
		"procdata.amount.total == 100",
		"procdata.amount.total != '100'",
		`procdata.a.b == 1 && procdata.c.d == 2`,
		`procdata.a.b == 1 and procdata.c.d == 2 or procdata.e.f != 3`,
		`((procdata.a.b == 1))`,
		`(procdata.a.b == 1 || procdata.c.d == 2) && procdata.e.f == 3`,
	}

	for _, rule := range tests {
		if _, err := Parse(rule); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", rule, err)
		}
	}
}

func TestEvaluate_MalformedRuleReturnsError(t *testing.T) {
	got, err := Evaluate("not a rule at all", Snapshot{})
	if err == nil {
		t.Fatal("expected parse error for malformed rule")
	}
	if got {
		t.Error("malformed rule must evaluate to false")
	}
}

func TestTokenize_QuoteAwareness(t *testing.T) {
	tokens, err := tokenize(`procdata.a.b == "x && y" && procdata.c.d == 'p or q'`)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	// One text, one &&, one text
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].kind != tokText || tokens[1].kind != tokAnd || tokens[2].kind != tokText {
		t.Errorf("unexpected token kinds: %v", tokens)
	}
	if tokens[0].text != `procdata.a.b == "x && y"` {
		t.Errorf("first token = %q", tokens[0].text)
	}
	if tokens[2].text != `procdata.c.d == 'p or q'` {
		t.Errorf("third token = %q", tokens[2].text)
	}
}
