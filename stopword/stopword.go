/*
Package stopword bundles per-language stopword sets.

Stopwords are high-frequency function words that carry little search signal.
The sets here are deliberately modest: they cover determiners, pronouns,
prepositions and auxiliaries, not domain vocabulary. Filtering is opt-in:
the dispatcher only consults a set when one has been configured for the
language, so a zero-config tokenizer passes every token through.

Sets are built once at package initialization and never mutated afterwards;
they may be shared across any number of concurrent readers.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 the language-tokenizer authors
*/
package stopword

import (
	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/text/language"
)

var english = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "than", "so", "as",
	"of", "at", "by", "for", "from", "in", "into", "on", "onto", "to",
	"with", "about", "against", "between", "through", "during", "before",
	"after", "above", "below", "up", "down", "out", "off", "over", "under",
	"is", "are", "was", "were", "be", "been", "being", "am",
	"do", "does", "did", "doing", "have", "has", "had", "having",
	"will", "would", "can", "could", "shall", "should", "may", "might",
	"must", "not", "no", "nor",
	"i", "me", "my", "mine", "we", "us", "our", "ours",
	"you", "your", "yours", "he", "him", "his", "she", "her", "hers",
	"it", "its", "they", "them", "their", "theirs",
	"this", "that", "these", "those",
	"what", "which", "who", "whom", "whose", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "only", "own", "same", "too", "very", "just", "there", "here",
}

var french = []string{
	"le", "la", "les", "un", "une", "des", "du", "de", "d", "l",
	"et", "ou", "mais", "donc", "or", "ni", "car", "que", "qui", "quoi",
	"je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles",
	"me", "te", "se", "mon", "ton", "son", "ma", "ta", "sa",
	"mes", "tes", "ses", "notre", "votre", "leur", "leurs",
	"ce", "cet", "cette", "ces", "dans", "en", "sur", "sous", "avec",
	"sans", "pour", "par", "au", "aux", "est", "sont", "etre", "avoir",
	"a", "ai", "as", "avons", "avez", "ont", "ne", "pas", "plus", "y",
}

var spanish = []string{
	"el", "la", "los", "las", "un", "una", "unos", "unas", "de", "del",
	"y", "o", "pero", "si", "no", "ni", "que", "quien", "cual", "como",
	"yo", "tu", "el", "ella", "ello", "nosotros", "vosotros", "ellos",
	"ellas", "me", "te", "se", "nos", "os", "mi", "mis", "su", "sus",
	"este", "esta", "estos", "estas", "ese", "esa", "esos", "esas",
	"en", "a", "al", "con", "sin", "por", "para", "sobre", "entre",
	"es", "son", "era", "eran", "ser", "estar", "hay", "ha", "han",
	"mas", "muy", "ya", "lo", "le", "les",
}

var russian = []string{
	"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а",
	"то", "все", "она", "так", "его", "но", "да", "ты", "к", "у", "же",
	"вы", "за", "бы", "по", "ее", "мне", "было", "вот", "от", "меня",
	"еще", "нет", "о", "из", "ему", "они", "мы", "был", "это", "при",
}

var sets = map[language.Tag]*hashset.Set{}

func init() {
	for tag, words := range map[language.Tag][]string{
		language.English: english,
		language.French:  french,
		language.Spanish: spanish,
		language.Russian: russian,
	} {
		set := hashset.New()
		for _, w := range words {
			set.Add(w)
		}
		sets[tag] = set
	}
}

// Set returns the bundled stopword set for a language tag. The second
// return value is false when no set is bundled. The returned set is shared
// and must not be mutated.
func Set(tag language.Tag) (*hashset.Set, bool) {
	s, ok := sets[tag]
	return s, ok
}

// Words returns the raw bundled word list for a language tag, for callers
// who maintain their own set representation.
func Words(tag language.Tag) ([]string, bool) {
	switch tag {
	case language.English:
		return english, true
	case language.French:
		return french, true
	case language.Spanish:
		return spanish, true
	case language.Russian:
		return russian, true
	}
	return nil, false
}
