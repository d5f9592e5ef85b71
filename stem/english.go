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

// English is the Snowball English stemmer ("Porter2"). Words of one or two
// runes are returned unstemmed.
//
// The input is expected to be lowercase; the normalizer guarantees this for
// pipeline use. A 'y' is marked as consonant 'Y' when word-initial or
// following a vowel, and restored on output.
func English(word string) string {
	rs := []rune(word)
	if len(rs) > 0 && rs[0] == '\'' {
		rs = rs[1:]
	}
	if len(rs) <= 2 {
		return string(rs)
	}
	if out, ok := engExceptions[string(rs)]; ok {
		return out
	}

	marked := false
	for i := range rs {
		if rs[i] == 'y' && (i == 0 || isEnglishVowel(rs[i-1])) {
			rs[i] = 'Y'
			marked = true
		}
	}

	w := &engWord{rs: rs}
	w.r1 = engR1(rs)
	w.r2 = regionAfter(rs, w.r1, isEnglishVowel)

	w.step0()
	w.step1a()
	if !engPostponed[string(w.rs)] {
		w.step1b()
		w.step1c()
		w.step2()
		w.step3()
		w.step4()
		w.step5()
	}

	out := w.rs
	if marked {
		for i := range out {
			if out[i] == 'Y' {
				out[i] = 'y'
			}
		}
	}
	return string(out)
}

// Exceptional forms, checked before any step runs.
var engExceptions = map[string]string{
	"skis":   "ski",
	"skies":  "sky",
	"dying":  "die",
	"lying":  "lie",
	"tying":  "tie",
	"idly":   "idl",
	"gently": "gentl",
	"ugly":   "ugli",
	"early":  "earli",
	"only":   "onli",
	"singly": "singl",
	"sky":    "sky",
	"news":   "news",
	"howe":   "howe",
	"atlas":  "atlas",
	"cosmos": "cosmos",
	"bias":   "bias",
	"andes":  "andes",
}

// Invariant forms after step 1a; the remaining steps are skipped for these.
var engPostponed = map[string]bool{
	"inning":  true,
	"outing":  true,
	"canning": true,
	"herring": true,
	"earring": true,
	"proceed": true,
	"exceed":  true,
	"succeed": true,
}

// 'Y' is deliberately absent: marked ys count as consonants.
func isEnglishVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// engR1 computes R1, honoring the exceptional prefixes gener-, commun- and
// arsen-.
func engR1(rs []rune) int {
	for _, p := range [...]string{"gener", "commun", "arsen"} {
		if hasPrefix(rs, p) {
			return len(p)
		}
	}
	return regionAfter(rs, 0, isEnglishVowel)
}

type engWord struct {
	rs     []rune
	r1, r2 int // rune offsets; stable because steps only shorten the tail
}

func (w *engWord) inR1(suffix string) bool {
	return len(w.rs)-len([]rune(suffix)) >= w.r1
}

func (w *engWord) inR2(suffix string) bool {
	return len(w.rs)-len([]rune(suffix)) >= w.r2
}

func (w *engWord) replace(suffix, repl string) {
	w.rs = append(w.rs[:len(w.rs)-len([]rune(suffix))], []rune(repl)...)
}

func (w *engWord) hasVowelBefore(n int) bool {
	for i := 0; i < n && i < len(w.rs); i++ {
		if isEnglishVowel(w.rs[i]) {
			return true
		}
	}
	return false
}

// endsShortSyllable reports whether rs ends in a short syllable: a vowel
// followed by a non-vowel other than w, x or Y and preceded by a non-vowel,
// or, at the start of a word, a vowel followed by a non-vowel.
func endsShortSyllable(rs []rune) bool {
	n := len(rs)
	if n == 2 {
		return isEnglishVowel(rs[0]) && !isEnglishVowel(rs[1])
	}
	if n < 3 {
		return false
	}
	c := rs[n-1]
	return !isEnglishVowel(rs[n-3]) && isEnglishVowel(rs[n-2]) &&
		!isEnglishVowel(c) && c != 'w' && c != 'x' && c != 'Y'
}

func (w *engWord) isShortWord() bool {
	return endsShortSyllable(w.rs) && w.r1 >= len(w.rs)
}

func endsDouble(rs []rune) bool {
	n := len(rs)
	if n < 2 || rs[n-1] != rs[n-2] {
		return false
	}
	switch rs[n-1] {
	case 'b', 'd', 'f', 'g', 'm', 'n', 'p', 'r', 't':
		return true
	}
	return false
}

func validLiEnding(r rune) bool {
	switch r {
	case 'c', 'd', 'e', 'g', 'h', 'k', 'm', 'n', 'r', 't':
		return true
	}
	return false
}

// step0 removes a trailing apostrophe form.
func (w *engWord) step0() {
	if s := longestSuffix(w.rs, "'s'", "'s", "'"); s != "" {
		w.replace(s, "")
	}
}

// step1a handles plural forms.
func (w *engWord) step1a() {
	switch {
	case hasSuffix(w.rs, "sses"):
		w.replace("sses", "ss")
	case hasSuffix(w.rs, "ied") || hasSuffix(w.rs, "ies"):
		suf := string(w.rs[len(w.rs)-3:])
		if len(w.rs) > 4 {
			w.replace(suf, "i")
		} else {
			w.replace(suf, "ie")
		}
	case hasSuffix(w.rs, "us") || hasSuffix(w.rs, "ss"):
		// leave
	case hasSuffix(w.rs, "s"):
		// delete if a vowel occurs before the penultimate letter
		for i := 0; i < len(w.rs)-2; i++ {
			if isEnglishVowel(w.rs[i]) {
				w.rs = w.rs[:len(w.rs)-1]
				break
			}
		}
	}
}

// step1b handles past and progressive verb suffixes.
func (w *engWord) step1b() {
	suf := longestSuffix(w.rs, "eedly", "ingly", "edly", "eed", "ing", "ed")
	switch suf {
	case "eedly", "eed":
		if w.inR1(suf) {
			w.replace(suf, "ee")
		}
	case "ingly", "edly", "ing", "ed":
		if !w.hasVowelBefore(len(w.rs) - len(suf)) {
			return
		}
		w.replace(suf, "")
		switch {
		case hasSuffix(w.rs, "at") || hasSuffix(w.rs, "bl") || hasSuffix(w.rs, "iz"):
			w.rs = append(w.rs, 'e')
		case endsDouble(w.rs):
			w.rs = w.rs[:len(w.rs)-1]
		case w.isShortWord():
			w.rs = append(w.rs, 'e')
		}
	}
}

// step1c turns a consonant-preceded final y into i.
func (w *engWord) step1c() {
	n := len(w.rs)
	if n > 2 && (w.rs[n-1] == 'y' || w.rs[n-1] == 'Y') && !isEnglishVowel(w.rs[n-2]) {
		w.rs[n-1] = 'i'
	}
}

// step2 maps derivational suffixes, constrained to R1.
func (w *engWord) step2() {
	suf := longestSuffix(w.rs,
		"ization", "ational", "fulness", "ousness", "iveness",
		"tional", "biliti", "lessli",
		"ation", "alism", "aliti", "ousli", "entli", "fulli", "iviti",
		"enci", "anci", "abli", "izer", "ator", "alli",
		"bli", "ogi", "li")
	if suf == "" || !w.inR1(suf) {
		return
	}
	switch suf {
	case "tional":
		w.replace(suf, "tion")
	case "enci":
		w.replace(suf, "ence")
	case "anci":
		w.replace(suf, "ance")
	case "abli":
		w.replace(suf, "able")
	case "entli":
		w.replace(suf, "ent")
	case "izer", "ization":
		w.replace(suf, "ize")
	case "ational", "ation", "ator":
		w.replace(suf, "ate")
	case "alism", "aliti", "alli":
		w.replace(suf, "al")
	case "fulness", "fulli":
		w.replace(suf, "ful")
	case "ousli", "ousness":
		w.replace(suf, "ous")
	case "iveness", "iviti":
		w.replace(suf, "ive")
	case "biliti", "bli":
		w.replace(suf, "ble")
	case "lessli":
		w.replace(suf, "less")
	case "ogi":
		if len(w.rs) >= 4 && w.rs[len(w.rs)-4] == 'l' {
			w.replace(suf, "og")
		}
	case "li":
		if len(w.rs) >= 3 && validLiEnding(w.rs[len(w.rs)-3]) {
			w.replace(suf, "")
		}
	}
}

// step3 maps further derivational suffixes, constrained to R1 (one to R2).
func (w *engWord) step3() {
	suf := longestSuffix(w.rs,
		"ational", "tional", "alize", "icate", "iciti", "ative", "ical", "ness", "ful")
	if suf == "" || !w.inR1(suf) {
		return
	}
	switch suf {
	case "ational":
		w.replace(suf, "ate")
	case "tional":
		w.replace(suf, "tion")
	case "alize":
		w.replace(suf, "al")
	case "icate", "iciti", "ical":
		w.replace(suf, "ic")
	case "ful", "ness":
		w.replace(suf, "")
	case "ative":
		if w.inR2(suf) {
			w.replace(suf, "")
		}
	}
}

// step4 deletes residual suffixes, constrained to R2.
func (w *engWord) step4() {
	suf := longestSuffix(w.rs,
		"ement",
		"ance", "ence", "able", "ible", "ment",
		"ant", "ent", "ism", "ate", "iti", "ous", "ive", "ize", "ion",
		"al", "er", "ic")
	if suf == "" || !w.inR2(suf) {
		return
	}
	if suf == "ion" {
		n := len(w.rs)
		if n >= 4 && (w.rs[n-4] == 's' || w.rs[n-4] == 't') {
			w.replace(suf, "")
		}
		return
	}
	w.replace(suf, "")
}

// step5 deletes a residual e or l.
func (w *engWord) step5() {
	n := len(w.rs)
	if n == 0 {
		return
	}
	if w.rs[n-1] == 'e' {
		if w.inR2("e") || (w.inR1("e") && !endsShortSyllable(w.rs[:n-1])) {
			w.rs = w.rs[:n-1]
		}
		return
	}
	if w.rs[n-1] == 'l' && n >= 2 && w.rs[n-2] == 'l' && w.inR2("l") {
		w.rs = w.rs[:n-1]
	}
}
