package main

import (
	"flag"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/ruletex/fluent"
	"github.com/npillmayer/ruletex/sexp"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users may enter rewrite rules
// in either the s-expression or the fluent dialect. The converted LaTeX
// is printed right away. Rules given as command line arguments or via an
// init file are converted up front.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Rule file to convert on startup")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to RuleTeX")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	//
	// set up REPL
	repl, err := readline.New("ruletex> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	conv := &Converter{repl: repl}
	if input != "" {
		conv.Convert(input)
	}
	tracer().Infof("Quit with <ctrl>D")
	conv.loadInitFile(*initf) // init file name provided by flag
	conv.REPL()               // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Converter is our interactive converter object
type Converter struct {
	lastInput string
	repl      *readline.Instance
}

// loadInitFile converts the rules of a whole file up front. The file is
// handed to the batch converter in one piece, so multi-line s-expression
// rules work.
func (conv *Converter) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	conv.Convert(string(content))
}

// REPL starts interactive mode.
func (conv *Converter) REPL() {
	for {
		line, err := conv.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			break
		}
		conv.Convert(line)
	}
	println("Good bye!")
}

// Convert converts a rule in either dialect and prints the resulting
// LaTeX, or the error sentinel if the input was not understood.
func (conv *Converter) Convert(ruleText string) {
	conv.lastInput = ruleText
	latex := convertAny(ruleText)
	if strings.HasPrefix(latex, "Error: ") {
		pterm.Error.Println(latex)
		return
	}
	pterm.Info.Println(latex)
}

// convertAny picks the dialect: s-expression rules start with "(rule" or
// "(rewrite", fluent rules contain a "rewrite(…)" call.
func convertAny(ruleText string) string {
	trimmed := strings.TrimSpace(ruleText)
	if strings.HasPrefix(trimmed, "(rule") || strings.HasPrefix(trimmed, "(rewrite") {
		return sexp.ToLatex(trimmed)
	}
	if strings.Contains(trimmed, "rewrite(") {
		return fluent.ConvertRule(trimmed)
	}
	return sexp.ToLatex(trimmed) // yields the sentinel for unrecognized input
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
