package fluent

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token ids for the comparison operators recognized in condition lines.
const (
	opGeq = iota + 1
	opLeq
	opEq
	opNeq
	opLt
	opGt
)

// opLatex maps operator token ids to their LaTeX replacements.
var opLatex = map[int]string{
	opGeq: "\\geq",
	opLeq: "\\leq",
	opEq:  "=",
	opNeq: "\\neq",
	opLt:  "<",
	opGt:  ">",
}

var opLexer *lexmachine.Lexer

var lexOnce sync.Once // monitors one-time compilation of the operator DFA

// operatorLexer compiles (once) a scanner for comparison operators. Two-char
// operators are listed before their one-char prefixes; lexmachine matches
// maximal munch, so ">=" never scans as ">" "=".
func operatorLexer() *lexmachine.Lexer {
	lexOnce.Do(func() {
		opLexer = lexmachine.NewLexer()
		opLexer.Add([]byte(`>=`), makeOp(opGeq))
		opLexer.Add([]byte(`<=`), makeOp(opLeq))
		opLexer.Add([]byte(`==`), makeOp(opEq))
		opLexer.Add([]byte(`!=`), makeOp(opNeq))
		opLexer.Add([]byte(`<`), makeOp(opLt))
		opLexer.Add([]byte(`>`), makeOp(opGt))
		if err := opLexer.Compile(); err != nil {
			panic(fmt.Errorf("cannot compile operator DFA: %v", err))
		}
	})
	return opLexer
}

func makeOp(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scanOperators returns the comparison-operator tokens occurring in a line,
// in source order. Characters that are not part of an operator are skipped.
func scanOperators(line string) []*lexmachine.Token {
	scan, err := operatorLexer().Scanner([]byte(line))
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return nil
	}
	var tokens []*lexmachine.Token
	for {
		tok, err, eof := scan.Next()
		for err != nil {
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				tracer().Errorf("scanner error: %v", err)
				return tokens
			}
			if ui.FailTC > scan.TC {
				scan.TC = ui.FailTC
			} else {
				scan.TC++ // always make progress
			}
			tok, err, eof = scan.Next()
		}
		if eof {
			break
		}
		tokens = append(tokens, tok.(*lexmachine.Token))
	}
	return tokens
}
