package hachimi

// FirstSpanInString returns the first span found in the given string and
// the remainder of the string following it. A span is either a single
// tag token or the longest run of plain text before the next tag token.
//
// A tag token starts with "<", optionally followed by "/" for a closing
// tag, then a name of one or more ASCII letters. An opening tag's name
// ends at ">", "=", or a space; after "=" or a space the payload runs
// uninterpreted up to the next ">" and may not contain "<". A closing
// tag is exactly "</", the name, and ">". Tag names are case-sensitive.
//
// Anything that starts with "<" but does not complete a tag token by
// these rules — an unterminated tag, a nested "<", a missing or
// non-alphabetic name — is plain text from that "<" onward. This is a
// recoverable condition, not an error: the scanner always consumes the
// entire input as spans, and concatenating the Raw fields of all spans
// reproduces the input exactly.
//
// This function can be called continuously to extract all spans from a
// string, as illustrated in the examples. Given an empty string, it
// returns zero values.
func FirstSpanInString(str string) (span Span, rest string) {
	if len(str) == 0 {
		return
	}
	if raw, name, closing, ok := parseTag(str); ok {
		kind := SpanTagOpen
		if closing {
			kind = SpanTagClose
		}
		return Span{Kind: kind, Name: name, Raw: raw}, str[len(raw):]
	}

	// Plain text extends to the next position where a well-formed tag
	// starts.
	for i := 1; i < len(str); i++ {
		if str[i] != '<' {
			continue
		}
		if _, _, _, ok := parseTag(str[i:]); ok {
			return Span{Kind: SpanText, Raw: str[:i]}, str[i:]
		}
	}
	return Span{Kind: SpanText, Raw: str}, ""
}

// Spans splits str into its complete span sequence. It is a convenience
// wrapper around [FirstSpanInString]; prefer the streaming function or
// [Scanner] when the sequence does not need to be held in memory.
func Spans(str string) []Span {
	var spans []Span
	for len(str) > 0 {
		var span Span
		span, str = FirstSpanInString(str)
		spans = append(spans, span)
	}
	return spans
}

// parseTag attempts to read one complete tag token from the start of s.
// It reports ok == false when s does not begin with a well-formed tag.
func parseTag(s string) (raw, name string, closing, ok bool) {
	if len(s) < 3 || s[0] != '<' {
		return "", "", false, false
	}
	i := 1
	if s[i] == '/' {
		closing = true
		i++
	}
	start := i
	for i < len(s) && isTagNameByte(s[i]) {
		i++
	}
	if i == start || i >= len(s) {
		return "", "", false, false
	}
	name = s[start:i]
	if s[i] == '>' {
		return s[:i+1], name, closing, true
	}
	if closing || (s[i] != '=' && s[i] != ' ') {
		return "", "", false, false
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case '>':
			return s[:i+1], name, closing, true
		case '<':
			return "", "", false, false
		}
	}
	return "", "", false, false
}

// isTagNameByte reports whether b may appear in a tag name. Names are
// runs of ASCII letters.
func isTagNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Scanner iterates over the spans of a string. While slightly more
// convenient than [FirstSpanInString], it allocates and is therefore
// better suited to one-off inspection than to hot paths.
type Scanner struct {
	original string
	rest     string
	span     Span
}

// NewScanner returns a new span iterator over the given string.
func NewScanner(str string) *Scanner {
	return &Scanner{original: str, rest: str}
}

// Next advances the scanner to the next span. It returns false when the
// end of the string has been reached.
func (sc *Scanner) Next() bool {
	if len(sc.rest) == 0 {
		sc.span = Span{}
		return false
	}
	sc.span, sc.rest = FirstSpanInString(sc.rest)
	return true
}

// Span returns the span the scanner is currently positioned on. It
// returns the zero Span before the first call to [Scanner.Next] and
// after Next has returned false.
func (sc *Scanner) Span() Span {
	return sc.span
}

// Reset puts the scanner back to the beginning of the string, allowing
// it to be iterated again.
func (sc *Scanner) Reset() {
	sc.rest = sc.original
	sc.span = Span{}
}
