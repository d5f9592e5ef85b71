/*
Package tokenizer turns free text into a normalized sequence of word-level
tokens, suitable for cross-language search and for substring/subsequence
matching on token sequences.

Description

Segmenting text into words is a language-dependent affair. For alphabetic
scripts (Latin, Cyrillic, Greek, …) word boundaries are largely a matter of
character classes, and search applications additionally want inflected word
forms reduced to a common stem ("rocks" → "rock"). For CJK scripts there is
no whitespace between words and segmentation requires dictionary lookup.
Southeast Asian scripts (Thai, Burmese, Lao, Khmer) lack both whitespace
boundaries and practical dictionaries, and are usually segmented with trained
sequence models.

This package treats all three families uniformly through a single entry
point. Callers select a language with an Algorithm tag:

   tokens, err := tokenizer.Tokenize("rocks, that's nice", tokenizer.English, false)
   // tokens = ["rock" "that" "nice"] once stopwords are configured,
   // ["rock" "that" "is" "nice"] … see stopword policy below

Alphabetic languages run through a three-stage pipeline implemented in the
sub-packages normalize (Unicode cleanup, case folding, clitic collapsing),
split (character-class boundary detection) and stem (Snowball-family suffix
stripping). CJK and Southeast Asian languages are delegated to injected
collaborator capabilities; see interfaces Segmenter and BoundaryModel and the
adapter sub-packages kagomeseg and gseseg. The package never embeds
dictionary or model data itself.

Token sequences produced by Tokenize may be handed to the matching engine,
which locates a needle sequence within a haystack sequence either exactly
(contiguous, order-preserving) or fuzzily (smallest window containing all
needle tokens, order-free):

   span, ok := tokenizer.FindMatch(haystack, needle, tokenizer.Exact, true)

All operations are synchronous and free of shared mutable state; rule tables
and capability dictionaries are loaded once and shared read-only, so any
number of goroutines may tokenize and match concurrently.

BSD License

Copyright (c) 2026, the language-tokenizer authors

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The base package holds the public API surface: the Algorithm enumeration and
its dispatch logic, the Token and TokenSequence types, the capability
interfaces for delegated segmentation, the matching engine, and locale
resolution helpers. The heavy lifting for alphabetic languages is done in
the sub-packages normalize, split, stem and stopword; implementors of
additional Segmenter or BoundaryModel capabilities are free to ignore all of
them and plug in a backend of their own.
*/
package tokenizer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tokenizer .
func tracer() tracing.Trace {
	return tracing.Select("tokenizer")
}
