package fluent

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// extractConditions collects condition lines trailing the ".to(…)" call.
// A line counts as a condition iff it is not the ".to(" line itself and
// contains a comparison operator. Detection is line-oriented on purpose:
// multi-line conditions, or comparison operators inside nested calls on
// the ".to(" line, are not understood.
func extractConditions(text string) []string {
	idx := strings.Index(text, ".to(")
	if idx < 0 {
		return nil
	}
	lines := strings.Split(text[idx:], "\n")
	var conditions []string
	for i, line := range lines {
		if i == 0 {
			continue // the ".to(" line itself
		}
		line = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), "),"))
		if line == "" {
			continue
		}
		if len(scanOperators(line)) > 0 {
			conditions = append(conditions, line)
		}
	}
	tracer().Debugf("found %d condition line(s)", len(conditions))
	return conditions
}
