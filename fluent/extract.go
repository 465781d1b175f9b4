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
)

// extractRewriteArg scans the first argument of a "rewrite(…)" call,
// starting just behind the opening parenthesis. The scan tracks both
// parenthesis and bracket depth; a comma at top level terminates the
// argument before the closing parenthesis, so trailing arguments of the
// call are ignored. Parenthesis depth reaching -1 means the stray ')'
// closed the call itself and likewise terminates the scan.
func extractRewriteArg(text string, pos int) (string, bool) {
	depth := 0
	brackets := 0
	for i := pos; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == -1 {
				return strings.TrimSpace(text[pos:i]), true
			}
		case '[':
			brackets++
		case ']':
			brackets--
		case ',':
			if depth == 0 && brackets == 0 {
				return strings.TrimSpace(text[pos:i]), true
			}
		}
	}
	tracer().Debugf("rewrite() argument never terminated")
	return "", false
}

// callShape matches an argument that is itself a function call, e.g.
// "add(x, 0)" as the argument of ".to(…)".
var callShape = regexp.MustCompile(`^\s*[A-Za-z_][A-Za-z0-9_.]*\(`)

// extractToArg scans the first argument of a ".to(…)" call, starting just
// behind the opening parenthesis. A call-shaped argument is balanced
// through its own parentheses; anything else is read until a top-level
// comma, newline or the closing parenthesis of the ".to(" itself.
func extractToArg(text string, pos int) (string, bool) {
	rest := text[pos:]
	if loc := callShape.FindStringIndex(rest); loc != nil {
		depth := 0
		for i := loc[1] - 1; i < len(rest); i++ {
			switch rest[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return strings.TrimSpace(rest[:i+1]), true
				}
			}
		}
		tracer().Debugf(".to() call argument never balanced")
		return "", false
	}
	depth := 0
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\n':
			return strings.TrimSpace(rest[:i]), true
		case '(':
			depth++
		case ')':
			depth--
			if depth == -1 {
				return strings.TrimSpace(rest[:i]), true
			}
		case ',':
			if depth == 0 {
				return strings.TrimSpace(rest[:i]), true
			}
		}
	}
	tracer().Debugf(".to() argument never terminated")
	return "", false
}
