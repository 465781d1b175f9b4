/*
Package fluent converts fluent rule notation to LaTeX inference rules.

Input is rule text of the form "rewrite(expr).to(expr2)", optionally
followed by condition lines containing comparison operators. Output is a
LaTeX fraction stacking the premises over the conclusions, the same shape
package sexp produces for the s-expression dialect. The two dialects share
the balanced-span idea but differ in their extraction rules: this one
tracks bracket depth alongside parenthesis depth and cuts extraction at a
top-level comma.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fluent

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ruletex.fluent'
func tracer() tracing.Trace {
	return tracing.Select("ruletex.fluent")
}
