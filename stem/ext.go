package stem

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
	"github.com/kljensen/snowball/french"
	"github.com/kljensen/snowball/hungarian"
	"github.com/kljensen/snowball/norwegian"
	"github.com/kljensen/snowball/russian"
	"github.com/kljensen/snowball/spanish"
	"github.com/kljensen/snowball/swedish"
	"golang.org/x/text/language"
)

// Rule tables for languages beyond English come from the kljensen/snowball
// implementation of the same algorithm family. Stopword handling is the
// dispatcher's business, so the stemmers run with stemStopWords off.
func snowballFunc(f func(string, bool) string) Func {
	return func(word string) string {
		if len([]rune(word)) <= 2 {
			return word
		}
		return f(word, false)
	}
}

var stemmers = map[language.Tag]Func{
	language.English:   English,
	language.Spanish:   snowballFunc(spanish.Stem),
	language.French:    snowballFunc(french.Stem),
	language.Russian:   snowballFunc(russian.Stem),
	language.Swedish:   snowballFunc(swedish.Stem),
	language.Norwegian: snowballFunc(norwegian.Stem),
	language.Hungarian: snowballFunc(hungarian.Stem),
}
