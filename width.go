package hachimi

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StringWidth returns the visible monospace width of the given string,
// ignoring any tag markup it contains. Widths follow common terminal
// conventions: most characters occupy one cell, East Asian wide and
// fullwidth characters and most emoji occupy two, and combining marks
// and other zero-width code points occupy none. Tag tokens occupy zero
// cells regardless of their raw length.
func StringWidth(str string) int {
	width := 0
	for len(str) > 0 {
		var span Span
		span, str = FirstSpanInString(str)
		width += SpanWidth(span)
	}
	return width
}

// SpanWidth returns the visible monospace width of one span. Tag spans
// always have width zero.
func SpanWidth(span Span) int {
	if span.Kind != SpanText {
		return 0
	}
	width := 0
	state := -1
	run := span.Raw
	for len(run) > 0 {
		var cluster string
		cluster, run, _, state = uniseg.FirstGraphemeClusterInString(run, state)
		width += clusterWidth(cluster)
	}
	return width
}

// clusterWidth returns the unscaled cell width of a single grapheme
// cluster.
func clusterWidth(cluster string) int {
	return runewidth.StringWidth(cluster)
}
