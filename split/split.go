/*
Package split detects word-candidate boundaries in normalized text.

The scanner walks the input by character class: runs of letters and runs of
digits each form a candidate span, and a transition between the two classes
is itself a boundary ("x86" yields "x" and "86"). Combining marks attach to
the character before them and are kept inside the current span. Whitespace,
punctuation and symbol runs only terminate the current span. They are
discarded and never emitted, which is how a trailing comma or exclamation
mark vanishes from the token stream while the word it clings to survives.

Scanner provides an interface similar to bufio.Scanner: successive calls to
Next step through the spans, and Text and Kind report the current span.
Scanners hold no state beyond their value; constructing a fresh scanner over
the same input restarts the iteration.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 the language-tokenizer authors
*/
package split

import (
	"unicode"
	"unicode/utf8"
)

// Kind classifies a span. Numeric spans bypass stemming further down the
// pipeline.
type Kind int

const (
	Alphabetic Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "alphabetic"
}

// Scanner steps through the word-candidate spans of one input string.
type Scanner struct {
	input string
	pos   int    // byte position of the scan front
	span  string // current span text
	kind  Kind   // current span class
}

// NewScanner creates a scanner over normalized input text.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Next advances the scanner to the next span. It returns false when the
// input is exhausted; Text and Kind then report the last span seen.
func (sc *Scanner) Next() bool {
	// skip boundary-only runs
	for sc.pos < len(sc.input) {
		r, size := utf8.DecodeRuneInString(sc.input[sc.pos:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		sc.pos += size
	}
	if sc.pos >= len(sc.input) {
		return false
	}
	start := sc.pos
	first, size := utf8.DecodeRuneInString(sc.input[sc.pos:])
	kind := Alphabetic
	if unicode.IsDigit(first) {
		kind = Numeric
	}
	sc.pos += size
	for sc.pos < len(sc.input) {
		r, size := utf8.DecodeRuneInString(sc.input[sc.pos:])
		// Combining marks attach to the preceding character and never
		// terminate a span.
		if unicode.Is(unicode.Mn, r) {
			sc.pos += size
			continue
		}
		if classOf(r) != kind || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
			break
		}
		sc.pos += size
	}
	sc.span = sc.input[start:sc.pos]
	sc.kind = kind
	return true
}

// Text returns the current span.
func (sc *Scanner) Text() string {
	return sc.span
}

// Kind returns the class of the current span.
func (sc *Scanner) Kind() Kind {
	return sc.kind
}

func classOf(r rune) Kind {
	if unicode.IsDigit(r) {
		return Numeric
	}
	return Alphabetic
}
