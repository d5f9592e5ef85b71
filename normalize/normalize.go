/*
Package normalize implements Unicode-aware text cleanup ahead of boundary
splitting and stemming.

Normalization is a total function: it never fails, and characters it does not
recognize pass through unchanged. It applies, in this order:

1. Punctuation unification. Typographic dashes and curly quotes are mapped to
their ASCII counterparts, so that later stages only ever see one apostrophe
form.

2. Full Unicode case folding, with language-aware lowercasing where the
language has folding exceptions (Turkish and Azeri dotless I) and simple
folding otherwise.

3. Diacritic handling. Languages whose stemming tables are defined on base
letters get canonical decomposition followed by removal of combining marks;
languages whose rule tables mention accented letters keep their diacritics
and are canonically composed instead, so marks reach the splitter attached
to their base letter.

4. Clitic collapsing. An apostrophe attached to a recognized clitic suffix
("that's", "we'll") causes marker and suffix to be dropped entirely, yielding
a single token for the host word. Apostrophes in any other position are left
in place and later discarded as ordinary punctuation by the splitter.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 the language-tokenizer authors
*/
package normalize

import (
	"context"
	"strings"
	"unicode"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to tokenizer.normalize .
func tracer() tracing.Trace {
	return tracing.Select("tokenizer.normalize")
}

// Profile configures normalization for one language.
//
// The zero Profile folds case with the language-agnostic folder, keeps
// diacritics and recognizes no clitics.
type Profile struct {
	Tag             language.Tag // folding locale; language.Und selects plain folding
	StripDiacritics bool         // remove combining marks after decomposition
	Clitics         []string     // apostrophe-attached suffixes to collapse
}

// englishClitics covers the possessive and the common verb contractions:
// 's, 'd, 'm, 't, 'll, 're, 've.
var englishClitics = []string{"s", "d", "m", "t", "ll", "re", "ve"}

// profiles holds the per-language deviations from the zero Profile.
// Languages absent here (French, Portuguese, …) keep their diacritics, which
// their stemming tables are defined on.
var azeri = language.MustParse("az")

var profiles = map[language.Tag]Profile{
	language.English: {Tag: language.English, StripDiacritics: true, Clitics: englishClitics},
	language.Turkish: {Tag: language.Turkish},
	azeri:            {Tag: azeri},
}

// ProfileFor returns the normalization profile for a language tag. Unknown
// tags get the zero profile with the tag attached for folding.
func ProfileFor(tag language.Tag) Profile {
	if p, ok := profiles[tag]; ok {
		return p
	}
	return Profile{Tag: tag}
}

// Text normalizes s under profile p. It is total: malformed or unexpected
// characters pass through unchanged.
func Text(s string, p Profile) string {
	s = unifyPunctuation(s)
	s = fold(s, p.Tag)
	if p.StripDiacritics {
		s = stripMarks(s)
	} else {
		// Compose decomposed sequences so that a mark and its base letter
		// reach the splitter as one code point wherever NFC has one.
		s = norm.NFC.String(s)
	}
	if len(p.Clitics) > 0 {
		s = collapseClitics(s, p.Clitics)
	}
	tracer().Debugf("normalized to %q", s)
	return s
}

// unifyPunctuation maps typographic dash and quote code-points onto their
// ASCII forms so that the clitic scanner and the splitter only have to know
// about one apostrophe.
func unifyPunctuation(s string) string {
	var sb strings.Builder
	changed := false
	for i, r := range s {
		switch {
		case r >= 0x2010 && r <= 0x2015: // hyphens and dashes
			if !changed {
				sb.WriteString(s[:i])
				changed = true
			}
			sb.WriteByte('-')
		case r >= 0x2018 && r <= 0x201B: // single quotation marks
			if !changed {
				sb.WriteString(s[:i])
				changed = true
			}
			sb.WriteByte('\'')
		case r >= 0x201C && r <= 0x201F: // double quotation marks
			if !changed {
				sb.WriteString(s[:i])
				changed = true
			}
			sb.WriteByte('"')
		default:
			if changed {
				sb.WriteRune(r)
			}
		}
	}
	if !changed {
		return s
	}
	return sb.String()
}

// fold lowercases s with full Unicode case folding. A concrete language tag
// selects locale-aware lowercasing, which differs from plain folding for
// Turkic dotless I.
func fold(s string, tag language.Tag) string {
	if tag != language.Und {
		return cases.Lower(tag).String(s)
	}
	return cases.Fold().String(s)
}

// The mark-stripping transform chain is stateful and must not be shared
// between concurrent callers. Transformers are pooled the same way the
// segmenter framework pools its short-lived recognizers.
type stripper struct {
	chain transform.Transformer
}

var stripperPool *pool.ObjectPool
var stripperCtx = context.Background()

func init() {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &stripper{
				chain: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
			}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	stripperPool = pool.NewObjectPool(stripperCtx, factory, config)
}

// stripMarks removes combining marks (accents, diacritics) after canonical
// decomposition and recomposes the rest.
func stripMarks(s string) string {
	o, err := stripperPool.BorrowObject(stripperCtx)
	if err != nil {
		// Pool exhaustion cannot happen with MaxTotal -1, but stay total.
		o = &stripper{
			chain: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		}
	}
	st := o.(*stripper)
	out, _, err := transform.String(st.chain, s)
	_ = stripperPool.ReturnObject(stripperCtx, st)
	if err != nil {
		tracer().Errorf("mark stripping: %v", err)
		return s
	}
	return out
}

// collapseClitics drops apostrophe-plus-clitic sequences at the end of a
// letter run: "that's" → "that". The apostrophe must follow a letter and the
// clitic must be immediately followed by a non-letter or the end of input.
func collapseClitics(s string, clitics []string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '\'' || i == 0 || !unicode.IsLetter(rs[i-1]) {
			sb.WriteRune(r)
			continue
		}
		j := i + 1
		for j < len(rs) && unicode.IsLetter(rs[j]) {
			j++
		}
		if isClitic(string(rs[i+1:j]), clitics) {
			i = j - 1 // skip marker and suffix
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isClitic(s string, clitics []string) bool {
	for _, c := range clitics {
		if s == c {
			return true
		}
	}
	return false
}
