package hachimi

import (
	"strings"
	"testing"
)

func TestSpansTokenization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{"plain only", "hello world", []Span{
			{SpanText, "", "hello world"},
		}},
		{"bare open", "<b>", []Span{
			{SpanTagOpen, "b", "<b>"},
		}},
		{"bare close", "</b>", []Span{
			{SpanTagClose, "b", "</b>"},
		}},
		{"open with value", "<color=red>x</color>", []Span{
			{SpanTagOpen, "color", "<color=red>"},
			{SpanText, "", "x"},
			{SpanTagClose, "color", "</color>"},
		}},
		{"open with space payload", "<ruby a b>x</ruby>", []Span{
			{SpanTagOpen, "ruby", "<ruby a b>"},
			{SpanText, "", "x"},
			{SpanTagClose, "ruby", "</ruby>"},
		}},
		{"text around tags", "a<size=20>b</size>c", []Span{
			{SpanText, "", "a"},
			{SpanTagOpen, "size", "<size=20>"},
			{SpanText, "", "b"},
			{SpanTagClose, "size", "</size>"},
			{SpanText, "", "c"},
		}},
		{"adjacent tags", "<b><i>", []Span{
			{SpanTagOpen, "b", "<b>"},
			{SpanTagOpen, "i", "<i>"},
		}},
		{"case is preserved", "<B>x</b>", []Span{
			{SpanTagOpen, "B", "<B>"},
			{SpanText, "", "x"},
			{SpanTagClose, "b", "</b>"},
		}},
		{"unterminated tag", "<size=10", []Span{
			{SpanText, "", "<size=10"},
		}},
		{"lone bracket", "a < b", []Span{
			{SpanText, "", "a < b"},
		}},
		{"empty name", "<>x", []Span{
			{SpanText, "", "<>x"},
		}},
		{"numeric name", "<1x>", []Span{
			{SpanText, "", "<1x>"},
		}},
		{"nested bracket recovers", "<a<b>x", []Span{
			{SpanText, "", "<a"},
			{SpanTagOpen, "b", "<b>"},
			{SpanText, "", "x"},
		}},
		{"bracket in payload", "<a=1<2>x", []Span{
			{SpanText, "", "<a=1<2>x"},
		}},
		{"close with payload is text", "</a b>", []Span{
			{SpanText, "", "</a b>"},
		}},
		{"space before name", "< a>", []Span{
			{SpanText, "", "< a>"},
		}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spans(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d spans, want %d: %v vs %v", len(got), len(tt.want), got, tt.want)
			}
			for i, span := range got {
				if span != tt.want[i] {
					t.Errorf("span %d: got %+v, want %+v", i, span, tt.want[i])
				}
			}
		})
	}
}

// TestSpansLossless verifies that tokenization never loses or reorders
// input, even for badly broken markup.
func TestSpansLossless(t *testing.T) {
	inputs := []string{
		"hello world",
		"<color=red>Hello world</color>",
		"a<b>c</b>d<eftag=zz>f",
		"<<<<",
		"<a<a<a<a>",
		"</",
		"tail<",
		"<size=10 and then some",
		"mixed <b>bold</i> mismatch</b>",
		"緑<color=green>の力</color>が満ちる",
		"\n<b>\n</b>\n",
	}
	for _, input := range inputs {
		var joined strings.Builder
		for _, span := range Spans(input) {
			joined.WriteString(span.Raw)
		}
		if joined.String() != input {
			t.Errorf("%q: concatenated spans %q differ from input", input, joined.String())
		}
	}
}

// TestSpansMaximalRuns verifies that adjacent plain text is emitted as
// a single span wherever no tag interrupts it.
func TestSpansMaximalRuns(t *testing.T) {
	spans := Spans("a < b < c")
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(spans), spans)
	}
	if spans[0].Kind != SpanText || spans[0].Raw != "a < b < c" {
		t.Errorf("got %+v, want one text span covering the input", spans[0])
	}
}

func TestScanner(t *testing.T) {
	sc := NewScanner("<b>x</b>")
	if got := sc.Span(); got != (Span{}) {
		t.Errorf("span before first Next: got %+v, want zero", got)
	}
	var kinds []SpanKind
	for sc.Next() {
		kinds = append(kinds, sc.Span().Kind)
	}
	want := []SpanKind{SpanTagOpen, SpanText, SpanTagClose}
	if len(kinds) != len(want) {
		t.Fatalf("got %d spans, want %d", len(kinds), len(want))
	}
	for i, kind := range kinds {
		if kind != want[i] {
			t.Errorf("span %d: got kind %d, want %d", i, kind, want[i])
		}
	}
	if sc.Next() {
		t.Error("Next returned true after end of input")
	}

	sc.Reset()
	n := 0
	for sc.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("after Reset: got %d spans, want 3", n)
	}
}
