package sexp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Sentinel strings returned in place of raising on failure. Callers may
// display them inline.
const (
	ErrNoRewrite    = "Error: Could not parse rewrite rule"
	ErrNoRule       = "Error: Could not parse rule"
	ErrUnrecognized = "Error: Unrecognized rule format"
)

// ToLatex converts one or more s-expression rules to LaTeX inference-rule
// format. Each rule becomes a fraction with premises over conclusions; a
// batch of rules is rendered rule by rule, separated by blank lines and
// numbered "% Rule N" comment headers.
//
// Failures yield a sentinel string starting with "Error: ", never a panic.
func ToLatex(ruleText string) string {
	ruleText = strings.TrimSpace(ruleText)
	total := strings.Count(ruleText, "(rule") + strings.Count(ruleText, "(rewrite")
	if total > 1 {
		blocks := extractRuleBlocks(ruleText)
		if blocks.Size() > 0 {
			tracer().Debugf("batch of %d rule(s)", blocks.Size())
			converted := make([]string, 0, blocks.Size())
			blocks.Each(func(i int, block interface{}) {
				latex := ToLatex(block.(string))
				converted = append(converted, fmt.Sprintf("%% Rule %d\n%s", i+1, latex))
			})
			return strings.Join(converted, "\n\n")
		}
	}
	switch {
	case strings.HasPrefix(ruleText, "(rewrite"):
		lhs, rhs, ok := ParseRewrite(ruleText)
		if !ok {
			tracer().Infof("cannot parse rewrite rule: %q", ruleText)
			return ErrNoRewrite
		}
		numerator := "expr = " + CleanExpression(lhs)
		denominator := "expr \\to " + CleanExpression(rhs)
		return fmt.Sprintf("\\frac{%s}{%s}", numerator, denominator)
	case strings.HasPrefix(ruleText, "(rule"):
		conditions, conclusions := ParseRule(ruleText)
		if len(conditions) == 0 && len(conclusions) == 0 {
			tracer().Infof("cannot parse rule: %q", ruleText)
			return ErrNoRule
		}
		conditionStrs := make([]string, len(conditions))
		for i, cond := range conditions {
			conditionStrs[i] = CleanEquation(cond)
		}
		conclusionStrs := make([]string, len(conclusions))
		for i, concl := range conclusions {
			conclusionStrs[i] = CleanExpression(concl)
		}
		numerator := FormatMultiline(conditionStrs)
		denominator := FormatMultiline(conclusionStrs)
		return fmt.Sprintf("\\frac{%s}{%s}", numerator, denominator)
	}
	return ErrUnrecognized
}

// extractRuleBlocks scans the input for top-level "(rule …)" and
// "(rewrite …)" blocks and collects each balanced block. Text between
// blocks is skipped.
func extractRuleBlocks(text string) *arraylist.List {
	blocks := arraylist.New()
	pos := 0
	for pos < len(text) {
		for pos < len(text) && isSpace(text[pos]) {
			pos++
		}
		if pos >= len(text) {
			break
		}
		if strings.HasPrefix(text[pos:], "(rule ") || strings.HasPrefix(text[pos:], "(rewrite ") {
			depth := 0
			start := pos
			for pos < len(text) {
				if text[pos] == '(' {
					depth++
				} else if text[pos] == ')' {
					depth--
					if depth == 0 {
						blocks.Add(text[start : pos+1])
						pos++
						break
					}
				}
				pos++
			}
		} else {
			pos++
		}
	}
	return blocks
}
