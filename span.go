package hachimi

// These constants classify the spans produced by the tag scanner. Tag
// spans carry markup that is preserved verbatim in the output but
// contributes nothing to a line's visible width.
//
// These are the values found in the Kind field of [Span], as returned
// by [FirstSpanInString], [Spans], and [Scanner.Span].
const (
	SpanText     SpanKind = iota // A run of plain text with no tag markup.
	SpanTagOpen                  // An opening tag such as <color=red>.
	SpanTagClose                 // A closing tag such as </color>.
)

// SpanKind identifies what a [Span] contains.
type SpanKind int

// Span is a maximal run of input text of one kind: either plain text or
// a single tag token. Raw is the literal slice of the source text, so
// concatenating the Raw fields of all spans of a string reproduces that
// string exactly. Name is the tag name for SpanTagOpen and SpanTagClose
// spans and empty for SpanText spans; any attribute payload after the
// name is carried only in Raw and is never interpreted.
type Span struct {
	Kind SpanKind
	Name string
	Raw  string
}
