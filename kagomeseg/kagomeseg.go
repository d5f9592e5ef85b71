/*
Package kagomeseg adapts the kagome morphological analyzer to the
tokenizer's Segmenter capability, providing dictionary-backed word
segmentation for Japanese.

The embedded IPA dictionary is loaded once at construction; the resulting
Segmenter is immutable and safe for concurrent use. Segmentation is
deterministic for a fixed input and dictionary version.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 the language-tokenizer authors
*/
package kagomeseg

import (
	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
)

// Segmenter implements the tokenizer.Segmenter capability on top of kagome.
type Segmenter struct {
	t *kagome.Tokenizer
}

// New loads the embedded IPA dictionary and builds the segmenter.
func New() (*Segmenter, error) {
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Segmenter{t: t}, nil
}

// Segment splits text into dictionary words, in input order. Synthetic
// beginning/end-of-sentence entries are dropped.
func (s *Segmenter) Segment(text string) ([]string, error) {
	tokens := s.t.Tokenize(text)
	spans := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == kagome.DUMMY {
			continue
		}
		spans = append(spans, tok.Surface)
	}
	return spans, nil
}
