/*
Package sexp converts s-expression rule notation to LaTeX inference rules.

Input is rule text of the form "(rule (conditions…) (conclusions…))" or
"(rewrite lhs rhs)". Output is a LaTeX fraction stacking the premises over
the conclusions. Parsing is a single forward pass built on balanced-span
extraction; there is no grammar and no backtracking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sexp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ruletex.sexp'
func tracer() tracing.Trace {
	return tracing.Select("ruletex.sexp")
}
