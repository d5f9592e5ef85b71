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
	"golang.org/x/text/language"
)

// Algorithm selects the language (or script family) a text is tokenized
// under. It is a closed enumeration: every variant maps to exactly one of
// three pipelines, namely the alphabetic normalize/split/stem pipeline,
// delegation to a dictionary-backed Segmenter capability (CJK), or
// delegation to a BoundaryModel capability (Southeast Asian scripts).
//
// Dispatch is a pure function of the tag; the package never guesses a
// language from text content.
type Algorithm int

// Alphabetic variants name a Snowball stemming rule-set; the CJK and
// Southeast Asian variants name a script family handled by an external
// capability.
const (
	None Algorithm = iota

	Arabic
	Armenian
	Basque
	Catalan
	Danish
	Dutch
	DutchPorter
	English
	Esperanto
	Estonian
	Finnish
	French
	German
	Greek
	Hindi
	Hungarian
	Indonesian
	Irish
	Italian
	Lithuanian
	Lovins
	Nepali
	Norwegian
	Porter
	Portuguese
	Romanian
	Russian
	Serbian
	Spanish
	Swedish
	Tamil
	Turkish
	Yiddish

	Japanese
	Chinese
	Korean

	Thai
	Burmese
	Lao
	Khmer
)

var algorithmNames = [...]string{
	"None",
	"Arabic", "Armenian", "Basque", "Catalan", "Danish", "Dutch",
	"DutchPorter", "English", "Esperanto", "Estonian", "Finnish", "French",
	"German", "Greek", "Hindi", "Hungarian", "Indonesian", "Irish",
	"Italian", "Lithuanian", "Lovins", "Nepali", "Norwegian", "Porter",
	"Portuguese", "Romanian", "Russian", "Serbian", "Spanish", "Swedish",
	"Tamil", "Turkish", "Yiddish",
	"Japanese", "Chinese", "Korean",
	"Thai", "Burmese", "Lao", "Khmer",
}

func (a Algorithm) String() string {
	if a < None || int(a) >= len(algorithmNames) {
		return "Algorithm(unknown)"
	}
	return algorithmNames[a]
}

// IsAlphabetic is true for variants handled by the normalize/split/stem
// pipeline, i.e. everything except the CJK and Southeast Asian families.
func (a Algorithm) IsAlphabetic() bool {
	return a > None && !a.IsCJK() && !a.IsSoutheastAsian()
}

// IsCJK is true for the variants delegated to a Segmenter capability.
func (a Algorithm) IsCJK() bool {
	return a == Japanese || a == Chinese || a == Korean
}

// IsSoutheastAsian is true for the variants delegated to a BoundaryModel
// capability.
func (a Algorithm) IsSoutheastAsian() bool {
	return a == Thai || a == Burmese || a == Lao || a == Khmer
}

// algorithmTags maps variants to BCP 47 language tags where one exists.
// Tags drive language-aware case folding and the lookup of stemming and
// stopword tables. Variants naming a bare rule-set (Porter, Lovins, …)
// deliberately have no tag.
var algorithmTags = map[Algorithm]language.Tag{
	Arabic:     language.Arabic,
	Armenian:   language.Armenian,
	Catalan:    language.Catalan,
	Danish:     language.Danish,
	Dutch:      language.Dutch,
	English:    language.English,
	Estonian:   language.Estonian,
	Finnish:    language.Finnish,
	French:     language.French,
	German:     language.German,
	Greek:      language.Greek,
	Hindi:      language.Hindi,
	Hungarian:  language.Hungarian,
	Indonesian: language.Indonesian,
	Italian:    language.Italian,
	Lithuanian: language.Lithuanian,
	Nepali:     language.Nepali,
	Norwegian:  language.Norwegian,
	Portuguese: language.Portuguese,
	Romanian:   language.Romanian,
	Russian:    language.Russian,
	Serbian:    language.Serbian,
	Spanish:    language.Spanish,
	Swedish:    language.Swedish,
	Tamil:      language.Tamil,
	Turkish:    language.Turkish,
	Japanese:   language.Japanese,
	Chinese:    language.Chinese,
	Korean:     language.Korean,
	Thai:       language.Thai,
	Burmese:    language.Burmese,
	Lao:        language.Lao,
	Khmer:      language.Khmer,
	Basque:     language.MustParse("eu"),
	Esperanto:  language.MustParse("eo"),
	Irish:      language.MustParse("ga"),
	Yiddish:    language.MustParse("yi"),
}

// Tag returns the BCP 47 language tag corresponding to the algorithm
// variant. The second return value is false for variants that name a bare
// rule-set rather than a language.
func (a Algorithm) Tag() (language.Tag, bool) {
	t, ok := algorithmTags[a]
	return t, ok
}
