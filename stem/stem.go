/*
Package stem reduces inflected word forms to a common root-like form by
staged suffix stripping, following the Snowball family of stemming
algorithms.

Snowball stemmers partition a word into regions: R1 begins after the first
non-vowel that follows a vowel, R2 begins after the first such point within
R1. Suffix removal steps are constrained to these regions, which is what
keeps a stemmer from eating into the root of short words ("bed" survives
step 1b because its R1 is empty). This package provides the region
computation and longest-suffix matching machinery, a native implementation
of the English (Porter2) rule set built on it, and registrations for further
languages backed by the kljensen/snowball rule tables.

Stemming is deterministic: the same word always yields the same result. It
is not guaranteed to be idempotent across repeated application. A stemmer
output is a search key, not a word.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 the language-tokenizer authors
*/
package stem

import (
	"golang.org/x/text/language"
)

// Func stems a single normalized (lowercased) word.
type Func func(word string) string

// For returns the stemming function registered for a language tag. The
// second return value is false when no rule table is available; callers are
// expected to surface this as an unsupported-language condition.
func For(tag language.Tag) (Func, bool) {
	f, ok := stemmers[tag]
	return f, ok
}

// Languages lists the tags a stemmer is registered for.
func Languages() []language.Tag {
	tags := make([]language.Tag, 0, len(stemmers))
	for tag := range stemmers {
		tags = append(tags, tag)
	}
	return tags
}

// --- Region computation -----------------------------------------------

// regionAfter returns the rune offset after the first non-vowel that
// follows a vowel, scanning from offset from. If no such point exists the
// region is empty and the word's length is returned.
func regionAfter(rs []rune, from int, isVowel func(rune) bool) int {
	for i := from; i < len(rs)-1; i++ {
		if isVowel(rs[i]) && !isVowel(rs[i+1]) {
			return i + 2
		}
	}
	return len(rs)
}

// --- Suffix matching --------------------------------------------------

func hasSuffix(rs []rune, suffix string) bool {
	suf := []rune(suffix)
	if len(suf) > len(rs) {
		return false
	}
	off := len(rs) - len(suf)
	for i, r := range suf {
		if rs[off+i] != r {
			return false
		}
	}
	return true
}

func hasPrefix(rs []rune, prefix string) bool {
	pre := []rune(prefix)
	if len(pre) > len(rs) {
		return false
	}
	for i, r := range pre {
		if rs[i] != r {
			return false
		}
	}
	return true
}

// longestSuffix returns the first candidate that is a suffix of rs.
// Candidates MUST be listed longest-first; Snowball steps act on the
// longest matching suffix only, even when a shorter candidate would satisfy
// the step's region condition.
func longestSuffix(rs []rune, candidates ...string) string {
	for _, c := range candidates {
		if hasSuffix(rs, c) {
			return c
		}
	}
	return ""
}
