package fluent

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// nestedCall matches content that is itself a function call. Such content
// keeps its outer parentheses during cleaning; the fluent dialect preserves
// call syntax literally.
var nestedCall = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*\(`)

// word matches identifier-like runs for selective underscore escaping.
var word = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_]*`)

// exemptions holds literal patterns whose underscores are meaningful
// notation rather than LaTeX subscript markers. Words containing one of
// these patterns pass through unescaped. The primitive-type helper
// families of the rule language are spelled with such underscores.
var exemptions = treeset.NewWithStringComparator(
	"i64_", "f64_", "bool_", "rational_",
)

// cleanExpr cleans an extracted fluent expression for LaTeX display.
// Outer parentheses are stripped only when the content is not itself a
// nested function call; underscores are escaped selectively. Idempotent
// on already-clean input.
func cleanExpr(expr string) string {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") && len(expr) >= 2 {
		inner := strings.TrimSpace(expr[1 : len(expr)-1])
		if !nestedCall.MatchString(inner) {
			expr = inner
		}
	}
	return escapeUnderscores(expr)
}

func escapeUnderscores(s string) string {
	return word.ReplaceAllStringFunc(s, func(w string) string {
		if !strings.Contains(w, "_") || isExempt(w) {
			return w
		}
		return strings.ReplaceAll(w, "_", "\\_")
	})
}

func isExempt(w string) bool {
	return exemptions.Any(func(index int, pattern interface{}) bool {
		return strings.Contains(w, pattern.(string))
	})
}

// formatConditions renders condition lines as a single LaTeX conjunction:
// underscores escaped, comparison operators mapped to their LaTeX symbols,
// conditions joined with \land.
func formatConditions(conditions []string) string {
	formatted := make([]string, len(conditions))
	for i, cond := range conditions {
		formatted[i] = mapOperators(strings.ReplaceAll(cond, "_", "\\_"))
	}
	return strings.Join(formatted, " \\land ")
}

// mapOperators replaces every comparison operator in cond with its LaTeX
// symbol, using the scanned token positions.
func mapOperators(cond string) string {
	tokens := scanOperators(cond)
	if len(tokens) == 0 {
		return cond
	}
	var b strings.Builder
	last := 0
	for _, t := range tokens {
		b.WriteString(cond[last:t.TC])
		b.WriteString(opLatex[t.Type])
		last = t.TC + len(t.Lexeme)
	}
	b.WriteString(cond[last:])
	return b.String()
}

// formatMultiline renders premise items as a single LaTeX item, mirroring
// the assembler of the s-expression dialect. The dialects stay separate
// modules; only the output shape is shared.
func formatMultiline(items []string) string {
	switch len(items) {
	case 0:
		return "\\text{true}"
	case 1:
		return items[0]
	}
	return "\\begin{array}{l} " + strings.Join(items, " \\\\ ") + " \\end{array}"
}
