package sexp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// formatIdentifier renders a single identifier for LaTeX display. Digit
// runs and single letters stay bare (math italic); everything else has its
// underscores escaped and is wrapped in \text{…}.
func formatIdentifier(word string) string {
	if isDigits(word) || (utf8.RuneCountInString(word) == 1 && isLetters(word)) {
		return word
	}
	return "\\text{" + strings.ReplaceAll(word, "_", "\\_") + "}"
}

// parseExpression formats an expression recursively. Parenthesized
// expressions are rendered as function applications, bare text as a run of
// formatted identifiers.
func parseExpression(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "(") {
		words := strings.Fields(text)
		for i, w := range words {
			words[i] = formatIdentifier(w)
		}
		return strings.Join(words, " ")
	}
	inner := ""
	if len(text) >= 2 {
		inner = strings.TrimSpace(text[1 : len(text)-1])
	}
	parts := splitOnTopLevelSpace(inner)
	if len(parts) == 0 {
		return ""
	}
	funcName := formatIdentifier(parts[0])
	if len(parts) == 1 {
		return "(" + funcName + ")"
	}
	args := make([]string, len(parts)-1)
	for i, p := range parts[1:] {
		args[i] = parseExpression(p)
	}
	return funcName + "(" + strings.Join(args, ", ") + ")"
}

// splitOnTopLevelSpace splits on spaces at parenthesis depth zero; spaces
// inside nested parentheses stay part of the current piece. Pieces are
// trimmed, blank pieces dropped.
func splitOnTopLevelSpace(content string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				if piece := strings.TrimSpace(current.String()); piece != "" {
					parts = append(parts, piece)
					current.Reset()
				}
				continue
			}
		}
		current.WriteByte(c)
	}
	if piece := strings.TrimSpace(current.String()); piece != "" {
		parts = append(parts, piece)
	}
	return parts
}

// CleanExpression cleans and formats an expression for LaTeX display.
// Function applications become \text{name}(arg1, arg2, …); parenthesized
// groups that are not applications lose their outer parentheses and are
// re-processed as plain token runs. Already-clean input passes through
// unchanged.
func CleanExpression(expr string) string {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") && len(expr) >= 2 {
		inner := expr[1 : len(expr)-1]
		parts := strings.Fields(inner)
		if len(parts) > 1 && isCallName(parts[0]) {
			return parseExpression(expr)
		}
		expr = inner
	}
	return parseExpression(expr)
}

// CleanEquation cleans an equation expression of the form "(= lhs rhs…)",
// rendering it as "lhs = rhs". Anything else falls back to
// CleanExpression.
func CleanEquation(expr string) string {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "(= ") {
		content := expr[3:]
		if strings.HasSuffix(content, ")") {
			content = content[:len(content)-1]
		}
		parts := splitOnTopLevelSpace(content)
		if len(parts) >= 2 {
			lhs := CleanExpression(parts[0])
			rhs := CleanExpression(strings.Join(parts[1:], " "))
			return lhs + " = " + rhs
		}
	}
	return CleanExpression(expr)
}

// FormatMultiline renders a premise or conclusion list as a single LaTeX
// item. An empty list stands for a vacuous premise set and renders as
// \text{true}; more than one item becomes a left-aligned array block.
func FormatMultiline(items []string) string {
	switch len(items) {
	case 0:
		return "\\text{true}"
	case 1:
		return items[0]
	}
	return "\\begin{array}{l} " + strings.Join(items, " \\\\ ") + " \\end{array}"
}

// --- Identifier classification ---------------------------------------------

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isCallName tells whether a token may head a function application:
// alphanumeric after ignoring '_' and '-'.
func isCallName(word string) bool {
	stripped := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return -1
		}
		return r
	}, word)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
