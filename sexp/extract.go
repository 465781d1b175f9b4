package sexp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/ruletex"
)

// ExtractBalanced returns the content strictly between the first unmatched
// '(' at or after start and its matching ')', trimmed of surrounding
// whitespace, together with the position just behind the match.
//
// If no opening '(' exists in the remaining text, or the parenthesis is
// never closed, the null span is returned with End() set to start. Truncated
// input is treated as "no match", not as an error.
func ExtractBalanced(text string, start int) ruletex.Span {
	pos := start
	for pos < len(text) && text[pos] != '(' {
		pos++
	}
	if pos >= len(text) {
		return ruletex.NullSpan(start)
	}
	depth := 0
	contentStart := pos + 1
	for i := pos; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return ruletex.SpanOf(strings.TrimSpace(text[contentStart:i]), i+1)
			}
		}
	}
	tracer().Debugf("unbalanced parentheses after position %d", start)
	return ruletex.NullSpan(start)
}

// SplitTopLevel splits the inner content of a span into its top-level
// tokens. A token is either a parenthesized sub-expression, kept together
// with its parentheses, or a bare whitespace-delimited atom. Whitespace
// inside nested parentheses belongs to the current token. Blank content
// yields no tokens.
func SplitTopLevel(content string) []string {
	var expressions []string
	pos := 0
	for pos < len(content) {
		for pos < len(content) && isSpace(content[pos]) {
			pos++
		}
		if pos >= len(content) {
			break
		}
		if content[pos] == '(' {
			span := ExtractBalanced(content, pos)
			if !span.IsNull() {
				expressions = append(expressions, "("+span.Text()+")")
				pos = span.End()
			} else {
				pos++
			}
		} else {
			start := pos
			for pos < len(content) && !isSpace(content[pos]) && content[pos] != '(' && content[pos] != ')' {
				pos++
			}
			if pos > start {
				expressions = append(expressions, content[start:pos])
			} else {
				pos++ // stray ')', skip it
			}
		}
	}
	return expressions
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
