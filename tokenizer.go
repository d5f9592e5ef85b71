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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/text/language"

	"github.com/mazebrr/language-tokenizer/normalize"
	"github.com/mazebrr/language-tokenizer/split"
	"github.com/mazebrr/language-tokenizer/stem"
	"github.com/mazebrr/language-tokenizer/stopword"
)

// A Tokenizer dispatches tokenization requests to one of three pipelines,
// selected by Algorithm tag: the built-in normalize/split/stem pipeline for
// alphabetic languages, an injected Segmenter capability for CJK scripts,
// or an injected BoundaryModel capability for Southeast Asian scripts.
//
// A Tokenizer is assembled once with New and is immutable afterwards; all
// its methods are safe for concurrent use.
type Tokenizer struct {
	segmenters map[Algorithm]Segmenter
	models     map[Algorithm]BoundaryModel
	stopwords  map[Algorithm]*hashset.Set
}

// Option configures a Tokenizer during construction.
type Option func(*Tokenizer)

// WithSegmenter injects a dictionary-backed segmentation capability for a
// CJK algorithm variant. Without such an injection the variant reports
// ErrUnsupportedLanguage.
func WithSegmenter(alg Algorithm, seg Segmenter) Option {
	return func(t *Tokenizer) {
		t.segmenters[alg] = seg
	}
}

// WithBoundaryModel injects a boundary-prediction capability for a
// Southeast Asian algorithm variant.
func WithBoundaryModel(alg Algorithm, model BoundaryModel) Option {
	return func(t *Tokenizer) {
		t.models[alg] = model
	}
}

// WithStopwords configures a stopword list for an algorithm variant.
// Filtering only happens for variants that have a list configured; see the
// keepStopwords parameter of Tokenize for the per-call override.
func WithStopwords(alg Algorithm, words []string) Option {
	return func(t *Tokenizer) {
		set := hashset.New()
		for _, w := range words {
			set.Add(w)
		}
		t.stopwords[alg] = set
	}
}

// WithBundledStopwords configures the stopword sets shipped in package
// stopword for the given algorithm variants. Variants without a bundled set
// are skipped.
func WithBundledStopwords(algs ...Algorithm) Option {
	return func(t *Tokenizer) {
		for _, alg := range algs {
			tag, ok := alg.Tag()
			if !ok {
				continue
			}
			if set, ok := stopword.Set(tag); ok {
				t.stopwords[alg] = set
			}
		}
	}
}

// New creates a Tokenizer. A zero-config Tokenizer handles all alphabetic
// variants that have a stemming rule table, filters no stopwords, and has
// no CJK or Southeast Asian capabilities injected.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		segmenters: make(map[Algorithm]Segmenter),
		models:     make(map[Algorithm]BoundaryModel),
		stopwords:  make(map[Algorithm]*hashset.Set),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTokenizer = New()

// Tokenize tokenizes text with the package-level default Tokenizer: all
// rule-table languages available, no capabilities, no stopword lists.
func Tokenize(text string, alg Algorithm, keepStopwords bool) (TokenSequence, error) {
	return defaultTokenizer.Tokenize(text, alg, keepStopwords)
}

// Tokenize turns text into an ordered token sequence under the given
// algorithm. keepStopwords retains tokens that a configured stopword list
// would otherwise drop.
//
// Errors: ErrInvalidEncoding for malformed UTF-8, ErrUnsupportedLanguage
// when the variant has no pipeline, ErrEmptyInput when no candidate spans
// survive the pipeline, and wrapped collaborator errors from injected
// capabilities.
func (t *Tokenizer) Tokenize(text string, alg Algorithm, keepStopwords bool) (TokenSequence, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}
	tracer().Debugf("tokenize %d bytes as %s", len(text), alg)
	switch {
	case alg.IsAlphabetic():
		return t.alphabetic(text, alg, keepStopwords)
	case alg.IsCJK():
		return t.delegated(text, alg, keepStopwords)
	case alg.IsSoutheastAsian():
		return t.boundaryModeled(text, alg, keepStopwords)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, alg)
}

// alphabetic runs normalize → split → stem and applies the stopword policy.
func (t *Tokenizer) alphabetic(text string, alg Algorithm, keepStopwords bool) (TokenSequence, error) {
	tag, ok := alg.Tag()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, alg)
	}
	stemf, ok := stem.For(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s (no stemming rule table)", ErrUnsupportedLanguage, alg)
	}
	normalized := normalize.Text(text, normalize.ProfileFor(tag))
	sc := split.NewScanner(normalized)
	var seq TokenSequence
	candidates := 0
	for sc.Next() {
		candidates++
		span := sc.Text()
		if sc.Kind() == split.Alphabetic {
			span = stemf(span)
		}
		if span == "" {
			continue
		}
		if t.dropToken(span, alg, keepStopwords) {
			continue
		}
		seq = append(seq, Token(span))
	}
	if candidates == 0 {
		return nil, ErrEmptyInput
	}
	return seq, nil
}

// delegated hands normalized text to the Segmenter capability injected for
// the variant. Spans come back case-folded but are never stemmed.
func (t *Tokenizer) delegated(text string, alg Algorithm, keepStopwords bool) (TokenSequence, error) {
	seg, ok := t.segmenters[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s (no segmenter capability injected)", ErrUnsupportedLanguage, alg)
	}
	tag, _ := alg.Tag()
	normalized := normalize.Text(text, normalize.ProfileFor(tag))
	spans, err := seg.Segment(normalized)
	if err != nil {
		return nil, fmt.Errorf("segmenter for %s: %w", alg, err)
	}
	return t.collect(spans, alg, keepStopwords)
}

// boundaryModeled hands the RAW text to the BoundaryModel capability: the
// scripts it serves lack whitespace boundaries, and normalization could
// destroy signal the model needs.
func (t *Tokenizer) boundaryModeled(text string, alg Algorithm, keepStopwords bool) (TokenSequence, error) {
	model, ok := t.models[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %s (no boundary model injected)", ErrUnsupportedLanguage, alg)
	}
	spans, err := model.PredictBoundaries(text)
	if err != nil {
		return nil, fmt.Errorf("boundary model for %s: %w", alg, err)
	}
	return t.collect(spans, alg, keepStopwords)
}

// collect turns capability spans into a token sequence, dropping empty and
// whitespace-only spans and applying the stopword policy.
func (t *Tokenizer) collect(spans []string, alg Algorithm, keepStopwords bool) (TokenSequence, error) {
	var seq TokenSequence
	candidates := 0
	for _, span := range spans {
		if strings.TrimSpace(span) == "" {
			continue
		}
		candidates++
		if t.dropToken(span, alg, keepStopwords) {
			continue
		}
		seq = append(seq, Token(span))
	}
	if candidates == 0 {
		return nil, ErrEmptyInput
	}
	return seq, nil
}

// dropToken applies the stopword policy: a token is dropped when the
// variant has a configured list containing it and the caller did not ask to
// keep stopwords.
func (t *Tokenizer) dropToken(span string, alg Algorithm, keepStopwords bool) bool {
	if keepStopwords {
		return false
	}
	set, ok := t.stopwords[alg]
	return ok && set.Contains(span)
}

// StemsFor exposes the language tags with a stemming rule table, mostly for
// diagnostics and capability discovery.
func StemsFor() []language.Tag {
	return stem.Languages()
}
