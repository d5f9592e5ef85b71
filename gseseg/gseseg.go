/*
Package gseseg adapts the gse dictionary segmenter to the tokenizer's
Segmenter capability. gse ships embedded dictionaries for Chinese ("zh",
the default here) and Japanese ("ja"), making it the alternate backend for
either language.

Dictionaries load once at construction; afterwards the segmenter is
read-only and safe for concurrent use.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 the language-tokenizer authors
*/
package gseseg

import (
	"github.com/go-ego/gse"
)

// Segmenter implements the tokenizer.Segmenter capability on top of gse.
type Segmenter struct {
	seg gse.Segmenter
}

// New builds a segmenter with the named embedded dictionaries ("zh", "ja").
// Without arguments the Chinese dictionary is loaded.
func New(dicts ...string) (*Segmenter, error) {
	s := &Segmenter{}
	s.seg.AlphaNum = true
	if len(dicts) == 0 {
		dicts = []string{"zh"}
	}
	for _, d := range dicts {
		if err := s.seg.LoadDictEmbed(d); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Segment splits text into dictionary words, in input order.
func (s *Segmenter) Segment(text string) ([]string, error) {
	return s.seg.Slice(text), nil
}
