package hachimi

import "testing"

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "Hello", 5},
		{"mixed cjk", "Hello, 世界", 11},
		{"combining mark", "é", 1},
		{"tags are free", "<color=red>Hello</color>", 5},
		{"only tags", "<b></b><size=2000></size>", 0},
		{"tag markup mid word", "ab<b>cd</b>", 4},
		{"broken markup counts as text", "<a", 2},
		{"wide inside tags", "<color=green>の力</color>", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringWidth(tt.input); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpanWidth(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want int
	}{
		{"text", Span{Kind: SpanText, Raw: "abc"}, 3},
		{"wide text", Span{Kind: SpanText, Raw: "世界"}, 4},
		{"open tag", Span{Kind: SpanTagOpen, Name: "color", Raw: "<color=red>"}, 0},
		{"close tag", Span{Kind: SpanTagClose, Name: "color", Raw: "</color>"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpanWidth(tt.span); got != tt.want {
				t.Errorf("SpanWidth(%+v) = %d, want %d", tt.span, got, tt.want)
			}
		})
	}
}
