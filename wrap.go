package hachimi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ErrInvalidInput is returned when the input text is not valid UTF-8.
// It is detected before any wrapping takes place.
var ErrInvalidInput = errors.New("hachimi: text is not valid UTF-8")

// ErrBudgetTooSmall is returned when the width budget or the scale
// factor cannot accommodate even a single minimum-width cluster: the
// width is not positive, the scale is not positive, or the scaled width
// of an ordinary cluster already exceeds the budget.
var ErrBudgetTooSmall = errors.New("hachimi: width budget cannot fit a single cluster")

// WrapLines wraps text into lines whose visible width does not exceed
// the given budget, and returns the lines in order.
//
// Tag tokens (see [FirstSpanInString] for the grammar) are kept intact,
// count zero toward the width, and never cause a break by themselves.
// Tags still open at a line boundary are closed at the end of that line
// and reopened, with their original raw markup, at the start of the
// next, so every returned line is independently well-formed markup.
//
// Breaks are placed at whitespace between words where possible; the
// whitespace a break lands on is not carried onto the new line. A word
// wider than the whole budget is split at grapheme cluster boundaries,
// never inside a cluster, so multi-code-point characters such as emoji
// sequences always stay whole. Hard line breaks in the input ("\n",
// "\r\n", or a lone "\r") are honored and blank lines preserved.
// No-break spaces (U+00A0) bind to the surrounding word.
//
// Every cluster's width is multiplied by scale before it is charged
// against the budget; pass 1 for identity. The scale models the
// caller's knowledge of its display metrics and does not change where
// breaks are allowed, only how much fits.
//
// A single cluster wider than the budget is emitted on a line of its
// own, over budget; that is the only way a returned line can exceed the
// budget. Broken markup — unterminated tags, closes that match nothing —
// is carried through verbatim and never aborts the call. Empty input
// wraps to a single empty line.
func WrapLines(text string, width int, scale float64) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidInput
	}
	if width <= 0 || scale <= 0 || float64(width) < scale {
		return nil, fmt.Errorf("%w: width %d, scale %g", ErrBudgetTooSmall, width, scale)
	}

	w := wrapper{budget: float64(width)}
	rest := text
	for len(rest) > 0 {
		var span Span
		span, rest = FirstSpanInString(rest)
		if span.Kind != SpanText {
			w.pending = append(w.pending, pendingSpan{span: span})
			continue
		}
		w.wrapRun(span.Raw, scale)
	}
	return w.finish(), nil
}

// WrapString is like [WrapLines] but returns the lines joined with
// "\n". Callers wanting a different separator should join the result of
// WrapLines themselves.
func WrapString(text string, width int, scale float64) (string, error) {
	lines, err := WrapLines(text, width, scale)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// cluster is one grapheme cluster of a word token together with its
// scaled width.
type cluster struct {
	str   string
	width float64
}

// pendingSpan is a span waiting between words: a whitespace cluster or
// a tag token. Pending spans are committed to the line only when the
// next word lands on it, so that a break can drop the whitespace it
// lands on and move adjacent tags to the side of the break they belong
// on.
type pendingSpan struct {
	span  Span
	width float64
}

// wrapper accumulates wrapped lines. It lives for one Wrap call.
type wrapper struct {
	budget  float64
	lines   []string
	line    strings.Builder
	width   float64 // visible width of the line under construction
	open    []Span  // tags opened but not yet closed, in opening order
	pending []pendingSpan
}

// wrapRun feeds one plain-text span through the line breaker, grouping
// its grapheme clusters into word and separator tokens.
func (w *wrapper) wrapRun(run string, scale float64) {
	var (
		word      strings.Builder
		wordWidth float64
		clusters  []cluster
	)
	flushWord := func() {
		if word.Len() == 0 {
			return
		}
		w.placeWord(word.String(), wordWidth, clusters)
		word.Reset()
		wordWidth = 0
		clusters = clusters[:0]
	}

	state := -1
	for len(run) > 0 {
		var c string
		c, run, _, state = uniseg.FirstGraphemeClusterInString(run, state)
		switch {
		case c == "\n" || c == "\r" || c == "\r\n":
			flushWord()
			w.hardBreak()
		case isSeparator(c):
			flushWord()
			cw := float64(clusterWidth(c)) * scale
			w.pending = append(w.pending, pendingSpan{span: Span{Kind: SpanText, Raw: c}, width: cw})
		default:
			word.WriteString(c)
			cw := float64(clusterWidth(c)) * scale
			wordWidth += cw
			clusters = append(clusters, cluster{str: c, width: cw})
		}
	}
	flushWord()
}

// isSeparator reports whether a cluster is breakable whitespace. The
// no-break space is deliberately not a separator.
func isSeparator(c string) bool {
	r, _ := utf8.DecodeRuneInString(c)
	return unicode.IsSpace(r) && r != ' '
}

// placeWord commits one word token, breaking the line first if the word
// together with the pending whitespace does not fit.
func (w *wrapper) placeWord(text string, width float64, clusters []cluster) {
	if w.width+w.pendingWidth()+width <= w.budget {
		w.flushPending()
		w.line.WriteString(text)
		w.width += width
		return
	}
	if w.width > 0 {
		w.breakLine()
	} else {
		w.dropPendingSeparators()
	}
	w.flushPending()
	if w.width+width <= w.budget {
		w.line.WriteString(text)
		w.width += width
		return
	}
	w.forceSplit(clusters)
}

// forceSplit places the clusters of a word wider than the whole budget
// one at a time, breaking exactly when the next cluster would overflow.
// A cluster that alone exceeds the budget is placed anyway: clusters
// are never split.
func (w *wrapper) forceSplit(clusters []cluster) {
	for _, c := range clusters {
		if w.width > 0 && w.width+c.width > w.budget {
			w.breakLine()
		}
		w.line.WriteString(c.str)
		w.width += c.width
	}
}

// hardBreak ends the current line at an explicit newline in the input.
// Pending content is committed verbatim first so that paragraph text
// round-trips exactly.
func (w *wrapper) hardBreak() {
	w.flushPending()
	w.emitLine()
}

// breakLine ends the current line at a soft break. Closing tags that
// directly follow the last placed word stay on the finished line; the
// whitespace the break lands on is dropped; all other pending tags move
// to the new line.
func (w *wrapper) breakLine() {
	i := 0
	for i < len(w.pending) && w.pending[i].span.Kind == SpanTagClose {
		w.applyTag(w.pending[i].span)
		i++
	}
	carried := w.pending[:0]
	for _, p := range w.pending[i:] {
		if p.span.Kind != SpanText {
			carried = append(carried, p)
		}
	}
	w.pending = carried
	w.emitLine()
}

// emitLine finishes the line under construction and rebalances tags
// across the boundary: tags still open are closed at the end of the
// finished line, innermost first, and reopened with their original raw
// markup at the start of the next, outermost first. A boundary with no
// open tags is emitted untouched.
func (w *wrapper) emitLine() {
	for i := len(w.open) - 1; i >= 0; i-- {
		w.line.WriteString("</")
		w.line.WriteString(w.open[i].Name)
		w.line.WriteString(">")
	}
	w.lines = append(w.lines, w.line.String())
	w.line.Reset()
	w.width = 0
	for _, span := range w.open {
		w.line.WriteString(span.Raw)
	}
}

// applyTag writes a tag token to the current line and updates the open
// tag stack. A closing tag pops only the matching innermost open tag; a
// close that matches nothing is emitted verbatim and leaves the stack
// untouched.
func (w *wrapper) applyTag(span Span) {
	w.line.WriteString(span.Raw)
	switch span.Kind {
	case SpanTagOpen:
		w.open = append(w.open, span)
	case SpanTagClose:
		if n := len(w.open); n > 0 && w.open[n-1].Name == span.Name {
			w.open = w.open[:n-1]
		}
	}
}

// flushPending commits all pending spans to the current line in input
// order.
func (w *wrapper) flushPending() {
	for _, p := range w.pending {
		if p.span.Kind == SpanText {
			w.line.WriteString(p.span.Raw)
			w.width += p.width
		} else {
			w.applyTag(p.span)
		}
	}
	w.pending = w.pending[:0]
}

// pendingWidth returns the visible width of the pending whitespace.
func (w *wrapper) pendingWidth() float64 {
	var width float64
	for _, p := range w.pending {
		width += p.width
	}
	return width
}

// dropPendingSeparators discards pending whitespace while keeping
// pending tags, for breaks landing at the start of a line.
func (w *wrapper) dropPendingSeparators() {
	kept := w.pending[:0]
	for _, p := range w.pending {
		if p.span.Kind != SpanText {
			kept = append(kept, p)
		}
	}
	w.pending = kept
}

// finish commits whatever remains and returns the wrapped lines. Tags
// the source never closes stay open on the last line.
func (w *wrapper) finish() []string {
	w.flushPending()
	w.lines = append(w.lines, w.line.String())
	return w.lines
}
