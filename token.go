package tokenizer

/*
License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 the language-tokenizer authors
*/

import (
	"strings"

	"golang.org/x/text/cases"
)

// Token is the final (stemmed or segmented) form of one word unit. A token
// is never empty and never pure whitespace; the pipelines discard such
// candidates before they surface.
type Token string

// TokenSequence is an ordered sequence of tokens as produced by a single
// Tokenize call. Order is significant and duplicates are allowed. Sequences
// are not mutated by this package after production.
type TokenSequence []Token

// Strings converts the sequence for callers interfacing with []string-based
// APIs.
func (ts TokenSequence) Strings() []string {
	ss := make([]string, len(ts))
	for i, t := range ts {
		ss[i] = string(t)
	}
	return ss
}

func (ts TokenSequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range ts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(t))
	}
	sb.WriteByte(']')
	return sb.String()
}

// foldKey maps a token to its full Unicode case-folded form. Exact and
// fuzzy matching both compare through this one function, so a token pair
// that matches in one mode matches in the other.
func foldKey(t Token) string {
	return cases.Fold().String(string(t))
}

// tokensEqual compares two tokens, either byte-exact or under Unicode
// case folding.
func tokensEqual(a, b Token, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return foldKey(a) == foldKey(b)
}
