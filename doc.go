/*
Package ruletex converts rewrite-rule notation into LaTeX inference rules.

RuleTeX is a small presentational tool: given the textual source of a
rewrite rule or a conditional rule, it produces a LaTeX fraction with the
premises stacked over the conclusions. It understands two closely related
input dialects and nothing else. Package structure is as follows:

■ sexp: Package sexp handles the s-expression dialect, i.e. rules of the
form "(rule (…) (…))" or "(rewrite lhs rhs)".

■ fluent: Package fluent handles the fluent method-chain dialect, i.e.
"rewrite(expr).to(expr2)" with optional trailing condition lines.

■ rtrepl: An interactive CLI for converting rules on the fly.

The base package contains the span type which extraction results are
built on. There is no execution semantics anywhere in this module: rules
are parsed syntactically and re-emitted as markup text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ruletex
