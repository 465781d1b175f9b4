package fluent

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Sentinel strings returned in place of raising on failure. Callers may
// display them inline.
const (
	ErrNoRewrite    = "Error: Could not parse rewrite rule"
	ErrUnrecognized = "Error: Unrecognized rule format"
)

// ConvertRule converts one fluent "rewrite(…).to(…)" construct to LaTeX
// inference-rule format. Trailing condition lines become part of the
// numerator, joined by \land under the rewritten expression.
//
// Failures yield a sentinel string starting with "Error: ", never a panic.
func ConvertRule(ruleText string) string {
	idx := strings.Index(ruleText, "rewrite(")
	if idx < 0 {
		tracer().Infof("no rewrite(…) call in input")
		return ErrUnrecognized
	}
	lhsRaw, ok := extractRewriteArg(ruleText, idx+len("rewrite("))
	if !ok || lhsRaw == "" {
		return ErrNoRewrite
	}
	toIdx := strings.Index(ruleText[idx:], ".to(")
	if toIdx < 0 {
		tracer().Infof("no .to(…) call after rewrite(…)")
		return ErrNoRewrite
	}
	rhsRaw, ok := extractToArg(ruleText, idx+toIdx+len(".to("))
	if !ok || rhsRaw == "" {
		return ErrNoRewrite
	}
	numerator := "expr = " + cleanExpr(lhsRaw)
	denominator := "expr \\to " + cleanExpr(rhsRaw)
	if conditions := extractConditions(ruleText); len(conditions) > 0 {
		numerator = formatMultiline([]string{numerator, formatConditions(conditions)})
	}
	return fmt.Sprintf("\\frac{%s}{%s}", numerator, denominator)
}
