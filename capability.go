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

// Segmenter is the collaborator capability for scripts that require
// dictionary-backed word segmentation (CJK). It receives normalized
// (case-folded) text and returns word-like spans in original order.
//
// Implementations must be deterministic for a fixed input and dictionary
// version, must load their dictionary before first use, and must be safe for
// concurrent read-only use. The adapter sub-packages kagomeseg and gseseg
// provide ready-made implementations.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// BoundaryModel is the collaborator capability for scripts whose word
// boundaries are predicted by a trained sequence model (Thai, Burmese, Lao,
// Khmer). Unlike Segmenter it receives the RAW input text: these scripts
// lack whitespace boundaries and normalization could remove signal the
// model depends on.
//
// The same contract as for Segmenter applies: deterministic, initialized
// once, safe for concurrent use.
type BoundaryModel interface {
	PredictBoundaries(text string) ([]string, error)
}

// SegmenterFunc adapts a plain function to the Segmenter capability.
type SegmenterFunc func(text string) ([]string, error)

// Segment calls f.
func (f SegmenterFunc) Segment(text string) ([]string, error) { return f(text) }

// BoundaryModelFunc adapts a plain function to the BoundaryModel capability.
type BoundaryModelFunc func(text string) ([]string, error)

// PredictBoundaries calls f.
func (f BoundaryModelFunc) PredictBoundaries(text string) ([]string, error) { return f(text) }
