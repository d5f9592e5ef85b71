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

import "errors"

// ErrUnsupportedLanguage is returned when an Algorithm variant has no
// pipeline available: either the variant has no stemming rule table, or the
// required Segmenter/BoundaryModel capability has not been injected.
//
// ErrInvalidEncoding is returned for input that is not well-formed UTF-8.
// The check happens at the API boundary, before normalization begins; all
// later pipeline stages are total on valid input.
//
// ErrEmptyInput is returned when the input contains no extractable candidate
// spans after normalization. It is a per-call condition, not a fault.
var (
	ErrUnsupportedLanguage = errors.New("no tokenizer available for algorithm")
	ErrInvalidEncoding     = errors.New("input is not well-formed UTF-8")
	ErrEmptyInput          = errors.New("input contains no token candidates")
)
