/*
Package rtrepl/main provides an interactive command line tool for
converting rewrite rules to LaTeX inference rules. Both input dialects
are accepted; the converter picks the dialect per input line. The tool is
meant as a quick aid while writing documentation or papers about rule
systems.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ruletex.repl'
func tracer() tracing.Trace {
	return tracing.Select("ruletex.repl")
}
