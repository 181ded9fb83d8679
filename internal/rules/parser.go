// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"fmt"
	"regexp"
	"strings"
)

type tokenKind int

const (
	tokText tokenKind = iota
	tokAnd
	tokOr
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func (t token) String() string {
	switch t.kind {
	case tokAnd:
		return "&&"
	case tokOr:
		return "||"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	}
	return t.text
}

// isIdentChar reports whether c can appear inside an identifier or value
// token. Used to recognize the and/or keywords only as whole words.
func isIdentChar(c byte) bool {
	return c == '_' || c == '-' || c == '.' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// tokenize splits the rule text into parens, boolean operators and text
// fragments. Quoted regions are opaque: operators inside single or double
// quotes never split.
func tokenize(input string) ([]token, error) {
	var tokens []token
	var buf strings.Builder
	var quote byte

	flush := func() {
		if text := strings.TrimSpace(buf.String()); text != "" {
			tokens = append(tokens, token{kind: tokText, text: text})
		}
		buf.Reset()
	}

	// wordAt reports whether the keyword occurs at i as a whole word.
	wordAt := func(i int, word string) bool {
		if !strings.HasPrefix(input[i:], word) {
			return false
		}
		if i > 0 && isIdentChar(input[i-1]) {
			return false
		}
		if end := i + len(word); end < len(input) && isIdentChar(input[end]) {
			return false
		}
		return true
	}

	for i := 0; i < len(input); {
		c := input[i]

		if quote != 0 {
			buf.WriteByte(c)
			if c == quote {
				quote = 0
			}
			i++
			continue
		}

		switch {
		case c == '\'' || c == '"':
			quote = c
			buf.WriteByte(c)
			i++
		case c == '(':
			flush()
			tokens = append(tokens, token{kind: tokLParen})
			i++
		case c == ')':
			flush()
			tokens = append(tokens, token{kind: tokRParen})
			i++
		case strings.HasPrefix(input[i:], "&&"):
			flush()
			tokens = append(tokens, token{kind: tokAnd})
			i += 2
		case strings.HasPrefix(input[i:], "||"):
			flush()
			tokens = append(tokens, token{kind: tokOr})
			i += 2
		case wordAt(i, "and"):
			flush()
			tokens = append(tokens, token{kind: tokAnd})
			i += 3
		case wordAt(i, "or"):
			flush()
			tokens = append(tokens, token{kind: tokOr})
			i += 2
		default:
			buf.WriteByte(c)
			i++
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in rule")
	}
	flush()

	return tokens, nil
}

// comparisonRe matches "procdata.<type>.<field> <op> <value>".
var comparisonRe = regexp.MustCompile(`^procdata\.([\w-]+)\.([\w-]+)\s*(==|!=)\s*(.+)$`)

// exprParser is a recursive descent parser over the token stream.
// Precedence: && binds tighter than ||; parentheses override.
type exprParser struct {
	tokens []token
	pos    int
}

func (p *exprParser) current() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *exprParser) advance() {
	p.pos++
}

func (p *exprParser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok || tok.kind != tokOr {
			return left, nil
		}
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &orExpr{left: left, right: right}
	}
}

func (p *exprParser) parseAnd() (Expr, error) {
	left, err := p.parseLeaf()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok || tok.kind != tokAnd {
			return left, nil
		}
		p.advance()
		right, err := p.parseLeaf()
		if err != nil {
			return nil, err
		}
		left = &andExpr{left: left, right: right}
	}
}

func (p *exprParser) parseLeaf() (Expr, error) {
	tok, ok := p.current()
	if !ok {
		return nil, fmt.Errorf("unexpected end of rule")
	}

	switch tok.kind {
	case tokLParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.current()
		if !ok || closing.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.advance()
		return inner, nil
	case tokText:
		p.advance()
		return parseTerm(tok.text)
	default:
		return nil, fmt.Errorf("unexpected token %q", tok)
	}
}

// parseTerm parses a leaf text fragment: either the default sentinel or a
// procdata comparison.
func parseTerm(text string) (Expr, error) {
	if text == DefaultRule {
		return defaultTerm{}, nil
	}

	m := comparisonRe.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("invalid comparison %q", text)
	}

	return &comparison{
		typeDesc: m[1],
		field:    m[2],
		op:       Operator(m[3]),
		value:    unquote(strings.TrimSpace(m[4])),
	}, nil
}

// unquote strips one matching pair of single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Parse parses rule text into an evaluatable expression.
func Parse(rule string) (Expr, error) {
	tokens, err := tokenize(rule)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty rule")
	}

	p := &exprParser{tokens: tokens}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.current(); ok {
		return nil, fmt.Errorf("unexpected trailing token %q", tok)
	}
	return expr, nil
}
