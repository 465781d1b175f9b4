package ruletex

import "fmt"

// --- Balanced spans --------------------------------------------------------

// A Span is the result of extracting a balanced parenthesized region from
// rule text. It carries the content strictly between the matching pair of
// parentheses (trimmed of surrounding whitespace) together with the input
// position immediately after the closing parenthesis.
//
// An example for input "(add x 0) y", extracted at position 0:
//
//    Text = "add x 0"    // content between '(' and ')'
//    End  = 9            // position just behind ')'
//
// A failed extraction yields the null span, whose End() reports the
// position the extraction was started at. The null span guarantees that
// callers never observe content with unequal counts of '(' and ')'.
type Span struct {
	text string
	end  int
	null bool
}

// SpanOf wraps extracted content and its end position into a Span.
func SpanOf(text string, end int) Span {
	return Span{text: text, end: end}
}

// NullSpan returns the no-match span for an extraction started at pos.
func NullSpan(pos int) Span {
	return Span{end: pos, null: true}
}

// Text returns the extracted content. It is empty for the null span.
func (s Span) Text() string {
	return s.text
}

// End returns the position just behind the closing parenthesis, or the
// original start position if the span is null.
func (s Span) End() int {
	return s.end
}

// IsNull tells whether the extraction found no balanced region.
func (s Span) IsNull() bool {
	return s.null
}

func (s Span) String() string {
	if s.null {
		return fmt.Sprintf("∅(…%d)", s.end)
	}
	return fmt.Sprintf("%q(…%d)", s.text, s.end)
}
