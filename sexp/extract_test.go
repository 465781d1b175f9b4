package sexp

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExtractBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.sexp")
	defer teardown()
	//
	span := ExtractBalanced("(add x 0) rest", 0)
	if span.IsNull() {
		t.Fatalf("expected a span, got null")
	}
	if span.Text() != "add x 0" {
		t.Errorf("span text should be %q, is %q", "add x 0", span.Text())
	}
	if span.End() != 9 {
		t.Errorf("span end should be 9, is %d", span.End())
	}
}

func TestExtractBalancedNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.sexp")
	defer teardown()
	//
	span := ExtractBalanced("x (add (mul y 2) 0)", 1)
	if span.IsNull() {
		t.Fatalf("expected a span, got null")
	}
	if span.Text() != "add (mul y 2) 0" {
		t.Errorf("span text should be %q, is %q", "add (mul y 2) 0", span.Text())
	}
}

func TestExtractNoParen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.sexp")
	defer teardown()
	//
	span := ExtractBalanced("no parens here", 3)
	if !span.IsNull() {
		t.Errorf("expected null span, got %v", span)
	}
	if span.End() != 3 {
		t.Errorf("null span should report the original position 3, reports %d", span.End())
	}
}

func TestExtractUnbalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.sexp")
	defer teardown()
	//
	span := ExtractBalanced("(add (mul x", 0)
	if !span.IsNull() {
		t.Errorf("truncated input should yield null span, got %v", span)
	}
}

func TestExtractBalanceInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.sexp")
	defer teardown()
	//
	inputs := []string{
		"(a (b c) (d (e)))",
		"((x))",
		"junk (foo (bar) baz) junk)",
		"()",
	}
	for _, input := range inputs {
		span := ExtractBalanced(input, 0)
		if span.IsNull() {
			continue
		}
		opens := strings.Count(span.Text(), "(")
		closes := strings.Count(span.Text(), ")")
		if opens != closes {
			t.Errorf("unbalanced span %q from input %q", span.Text(), input)
		}
	}
}

func TestSplitTopLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.sexp")
	defer teardown()
	//
	tokens := SplitTopLevel("(= a b) (foo (bar c)) atom")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	expected := []string{"(= a b)", "(foo (bar c))", "atom"}
	for i, tok := range tokens {
		if tok != expected[i] {
			t.Errorf("token %d should be %q, is %q", i, expected[i], tok)
		}
	}
}

func TestSplitTopLevelEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.sexp")
	defer teardown()
	//
	if tokens := SplitTopLevel(""); len(tokens) != 0 {
		t.Errorf("empty content should yield no tokens, got %v", tokens)
	}
	if tokens := SplitTopLevel("  \n\t "); len(tokens) != 0 {
		t.Errorf("blank content should yield no tokens, got %v", tokens)
	}
}
