package sexp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// ParseRewrite parses a rewrite rule of the form "(rewrite lhs rhs …)".
// It returns the lhs and rhs patterns; parenthesized patterns keep their
// parentheses, bare atoms stay bare. Rules without the rewrite keyword,
// or with a missing or empty pattern, yield ok=false.
func ParseRewrite(ruleText string) (lhs string, rhs string, ok bool) {
	ruleText = strings.TrimSpace(ruleText)
	if !strings.HasPrefix(ruleText, "(rewrite") {
		return "", "", false
	}
	content := strings.TrimSpace(ruleText[len("(rewrite"):])
	if strings.HasSuffix(content, ")") {
		content = strings.TrimSpace(content[:len(content)-1])
	}
	tokens := SplitTopLevel(content)
	if len(tokens) < 2 || tokens[0] == "()" || tokens[1] == "()" {
		tracer().Debugf("rewrite rule is missing lhs or rhs")
		return "", "", false
	}
	return tokens[0], tokens[1], true
}

// ParseRule parses a regular rule of the form "(rule (conditions…)
// (conclusions…))" into its condition and conclusion expressions. Either
// block may be empty, yielding an empty sequence: an unconditional rule,
// or a rule with no stated conclusion.
func ParseRule(ruleText string) (conditions []string, conclusions []string) {
	ruleText = strings.TrimSpace(ruleText)
	if strings.HasPrefix(ruleText, "(rule") {
		ruleText = strings.TrimSpace(ruleText[len("(rule"):])
	}
	if strings.HasSuffix(ruleText, ")") {
		ruleText = strings.TrimSpace(ruleText[:len(ruleText)-1])
	}
	condSpan := ExtractBalanced(ruleText, 0)
	conclSpan := ExtractBalanced(ruleText, condSpan.End())
	conditions = SplitTopLevel(condSpan.Text())
	conclusions = SplitTopLevel(conclSpan.Text())
	tracer().Debugf("rule has %d condition(s), %d conclusion(s)", len(conditions), len(conclusions))
	return conditions, conclusions
}
