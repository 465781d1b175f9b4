package fluent

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConvertRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	latex := ConvertRule("rewrite(add(x, 0)).to(x)")
	expected := "\\frac{expr = add(x, 0)}{expr \\to x}"
	if latex != expected {
		t.Errorf("expected %q, got %q", expected, latex)
	}
}

func TestConvertRuleNestedTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	latex := ConvertRule("rewrite(mul(x, 2)).to(add(x, x))")
	expected := "\\frac{expr = mul(x, 2)}{expr \\to add(x, x)}"
	if latex != expected {
		t.Errorf("expected %q, got %q", expected, latex)
	}
}

func TestConvertRuleWithCondition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	input := "rewrite(div(x, y)).to(mul(x, inv(y)),\n    y != 0)"
	latex := ConvertRule(input)
	expected := "\\frac{\\begin{array}{l} expr = div(x, y) \\\\ y \\neq 0 \\end{array}}" +
		"{expr \\to mul(x, inv(y))}"
	if latex != expected {
		t.Errorf("expected %q, got %q", expected, latex)
	}
}

func TestConvertRuleBracketArgument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	// the comma inside the bracket pair must not cut the argument;
	// the top-level comma before "extra" must
	latex := ConvertRule("rewrite(a[i, j], extra).to(b)")
	expected := "\\frac{expr = a[i, j]}{expr \\to b}"
	if latex != expected {
		t.Errorf("expected %q, got %q", expected, latex)
	}
}

func TestConvertRuleUnderscores(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	latex := ConvertRule("rewrite(my_func(x)).to(i64_max(x))")
	expected := "\\frac{expr = my\\_func(x)}{expr \\to i64_max(x)}"
	if latex != expected {
		t.Errorf("expected %q, got %q", expected, latex)
	}
}

func TestConvertRuleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	if latex := ConvertRule("not a rule"); latex != ErrUnrecognized {
		t.Errorf("expected %q, got %q", ErrUnrecognized, latex)
	}
	if latex := ConvertRule("rewrite(x)"); latex != ErrNoRewrite {
		t.Errorf("expected %q, got %q", ErrNoRewrite, latex)
	}
	if latex := ConvertRule("rewrite(x).to()"); latex != ErrNoRewrite {
		t.Errorf("expected %q, got %q", ErrNoRewrite, latex)
	}
}

func TestCleanExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	// outer parens stripped only when the content is not a nested call
	if out := cleanExpr("(a + b)"); out != "a + b" {
		t.Errorf("expected %q, got %q", "a + b", out)
	}
	if out := cleanExpr("(f(x))"); out != "(f(x))" {
		t.Errorf("expected %q, got %q", "(f(x))", out)
	}
	// idempotent on clean input
	if out := cleanExpr("add(x, 0)"); out != "add(x, 0)" {
		t.Errorf("clean input changed to %q", out)
	}
}

func TestScanOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	tokens := scanOperators("a >= b, c != d")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 operator tokens, got %d", len(tokens))
	}
	if tokens[0].Type != opGeq {
		t.Errorf("first operator should be >=, token type is %d", tokens[0].Type)
	}
	if tokens[1].Type != opNeq {
		t.Errorf("second operator should be !=, token type is %d", tokens[1].Type)
	}
}

func TestMapOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	if out := mapOperators("x >= y"); out != "x \\geq y" {
		t.Errorf("expected %q, got %q", "x \\geq y", out)
	}
	if out := mapOperators("x == 0"); out != "x = 0" {
		t.Errorf("expected %q, got %q", "x = 0", out)
	}
}

func TestFormatConditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	out := formatConditions([]string{"a >= b", "c_d == 1"})
	expected := "a \\geq b \\land c\\_d = 1"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}

func TestExtractConditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ruletex.fluent")
	defer teardown()
	//
	input := "rewrite(div(x, y)).to(mul(x, inv(y)),\n    y != 0,\n    x >= 0)"
	conditions := extractConditions(input)
	if len(conditions) != 2 {
		t.Fatalf("expected 2 conditions, got %d: %v", len(conditions), conditions)
	}
	if conditions[0] != "y != 0" {
		t.Errorf("first condition should be %q, is %q", "y != 0", conditions[0])
	}
	if conditions[1] != "x >= 0" {
		t.Errorf("second condition should be %q, is %q", "x >= 0", conditions[1])
	}
}
