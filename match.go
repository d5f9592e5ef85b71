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

// Mode selects how a needle sequence is located within a haystack sequence.
type Mode int

const (
	// Exact requires the needle to appear as a contiguous, order-preserving
	// run of tokens.
	Exact Mode = iota
	// Fuzzy requires all needle tokens to appear within one window of the
	// haystack, order-free; duplicates in the needle must be covered by
	// duplicates in the window. The shortest such window wins.
	Fuzzy
)

func (m Mode) String() string {
	if m == Fuzzy {
		return "fuzzy"
	}
	return "exact"
}

// Span is the location of a successful match: a start index and a length,
// both in haystack token positions.
type Span struct {
	Start int
	Len   int
}

// FindMatch locates needle within haystack. The boolean result is false
// when no match exists; absence of a match is not an error. An empty needle
// matches trivially at position 0.
//
// Both sequences are assumed to come out of the same tokenization pipeline;
// matching compares token strings only and re-examines no stemming or
// normalization differences. caseSensitive toggles between byte-exact
// comparison and Unicode case folding.
func FindMatch(haystack, needle TokenSequence, mode Mode, caseSensitive bool) (Span, bool) {
	if len(needle) == 0 {
		return Span{Start: 0, Len: 0}, true
	}
	if len(needle) > len(haystack) {
		return Span{}, false
	}
	switch mode {
	case Exact:
		return findExact(haystack, needle, caseSensitive)
	case Fuzzy:
		return findFuzzy(haystack, needle, caseSensitive)
	}
	return Span{}, false
}

// FindAllMatches locates every match of needle in haystack, in order of
// start index. Each search resumes one position past the previous match's
// start, so overlapping matches are reported.
func FindAllMatches(haystack, needle TokenSequence, mode Mode, caseSensitive bool) []Span {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return nil
	}
	var spans []Span
	offset := 0
	for offset < len(haystack) {
		span, ok := FindMatch(haystack[offset:], needle, mode, caseSensitive)
		if !ok {
			break
		}
		span.Start += offset
		spans = append(spans, span)
		offset = span.Start + 1
	}
	return spans
}

// findExact slides a window of needle length over the haystack and returns
// the first window with positionwise token equality.
func findExact(haystack, needle TokenSequence, caseSensitive bool) (Span, bool) {
	for start := 0; start+len(needle) <= len(haystack); start++ {
		hit := true
		for i, n := range needle {
			if !tokensEqual(haystack[start+i], n, caseSensitive) {
				hit = false
				break
			}
		}
		if hit {
			return Span{Start: start, Len: len(needle)}, true
		}
	}
	return Span{}, false
}

// findFuzzy finds the shortest haystack window containing the needle's
// token multiset, with a two-pointer sweep over a frequency counter. Among
// windows of minimal length the lowest start index wins. Runs in
// O(len(haystack) + len(needle)).
func findFuzzy(haystack, needle TokenSequence, caseSensitive bool) (Span, bool) {
	key := func(t Token) string {
		if caseSensitive {
			return string(t)
		}
		return foldKey(t)
	}
	need := make(map[string]int, len(needle))
	for _, n := range needle {
		need[key(n)]++
	}
	have := make(map[string]int, len(need))
	missing := len(needle)

	best := Span{}
	found := false
	left := 0
	for right := 0; right < len(haystack); right++ {
		k := key(haystack[right])
		if want, ok := need[k]; ok {
			have[k]++
			if have[k] <= want {
				missing--
			}
		}
		for missing == 0 {
			if w := right - left + 1; !found || w < best.Len {
				best = Span{Start: left, Len: w}
				found = true
			}
			lk := key(haystack[left])
			if want, ok := need[lk]; ok {
				have[lk]--
				if have[lk] < want {
					missing++
				}
			}
			left++
		}
	}
	return best, found
}
