/*
Package hachimi wraps text containing inline formatting tags into
fixed-width lines.

Inline tags such as <color=red>…</color> or <size=20>…</size> mark up
text that is later drawn in a constrained display area: a dialogue box,
a subtitle strip, a UI panel. Wrapping such text with byte or rune
counts goes wrong twice over: the tag markup inflates the measured
length even though the renderer draws none of it, and naive breaking
can land inside a multi-code-point character. This package breaks lines
by the width the renderer will actually draw.

# Overview

Using this package, you can:
  - Wrap tagged text to a visible-width budget
  - Tokenize tagged text into plain-text and tag spans
  - Measure the visible width of tagged text

Tag markup never counts toward a line's width, is never split, and is
rebalanced across line boundaries so that every emitted line is
independently well-formed: tags still open when a line ends are closed
at its end and reopened on the next line. Breaks respect Unicode
grapheme cluster boundaries, so combining sequences, regional-indicator
pairs, and emoji ZWJ sequences always stay whole.

# Getting Started

For wrapping:
  - [WrapLines] - Wrap to a slice of lines
  - [WrapString] - Wrap to a single string joined with "\n"

For tokenization:
  - [FirstSpanInString] - Process spans one at a time (recommended)
  - [Scanner] - Convenient iterator class
  - [Spans] - The whole span sequence at once

For measurement:
  - [StringWidth] - Visible width of tagged text
  - [SpanWidth] - Visible width of one span

# Tags

A tag is "<", an optional "/" marking a close, a name of one or more
ASCII letters, and an optional uninterpreted payload introduced by "="
or a space, ending at ">". The package attaches no meaning to any tag:
it does not know what color=red does, only that the token must survive
wrapping intact and must not count toward the width. Markup that does
not complete a tag by these rules — a stray "<", an unterminated tag, a
close that matches nothing — is carried through as ordinary text and
never causes an error, since wrapped text is often untrusted
localization content.

# Width and Scale

Widths follow common monospace conventions (see [StringWidth]). Every
cluster width is additionally multiplied by a caller-supplied scale
factor before being charged against the budget, which lets callers fold
proportional font metrics or display density into the budget without
this package knowing anything about fonts. A scale of 1 is the
identity.

# Errors

Only two conditions abort a wrap call, both detected up front: input
that is not valid UTF-8 ([ErrInvalidInput]) and a width/scale pairing
that cannot fit a single cluster ([ErrBudgetTooSmall]). Everything else
— malformed tags, unmatched closes, words wider than the whole budget —
degrades to a best-effort wrapped result.

A wrap call is a pure function of its arguments: it keeps no state
between calls and is safe to use from any number of goroutines
concurrently.
*/
package hachimi
