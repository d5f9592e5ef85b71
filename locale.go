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
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// localeAlgorithms lists the variants reachable through locale matching.
// The first entry doubles as the matcher's fallback.
var localeAlgorithms = []Algorithm{
	English, Spanish, French, German, Italian, Portuguese, Dutch,
	Danish, Norwegian, Swedish, Finnish, Estonian, Lithuanian,
	Russian, Serbian, Greek, Romanian, Hungarian, Catalan, Basque,
	Irish, Turkish, Arabic, Armenian, Hindi, Nepali, Tamil, Indonesian,
	Japanese, Chinese, Korean, Thai, Burmese, Lao, Khmer,
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(localeAlgorithms))
	for i, alg := range localeAlgorithms {
		t, _ := alg.Tag()
		tags[i] = t
	}
	return language.NewMatcher(tags)
}()

// AlgorithmForLocale maps an IETF locale string ("de-AT", "pt_BR") to the
// algorithm variant covering it, or None when no variant matches. The
// matcher always falls back to its first tag, so a candidate only counts
// when its base language agrees with the input's.
func AlgorithmForLocale(locale string) Algorithm {
	tag := language.Make(locale)
	if tag == language.Und {
		return None
	}
	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return None
	}
	alg := localeAlgorithms[index]
	base, baseConf := tag.Base()
	if baseConf == language.No {
		return None
	}
	algTag, _ := alg.Tag()
	if algBase, _ := algTag.Base(); algBase != base {
		return None
	}
	return alg
}

// DetectAlgorithm resolves the algorithm variant for the current user
// environment. When the environment carries no usable locale, English is
// assumed, mirroring the common en-US default.
func DetectAlgorithm() Algorithm {
	locale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("no user locale detected, assuming en-US: %v", err)
		return English
	}
	tracer().Infof("detected user locale %v", locale)
	if alg := AlgorithmForLocale(locale); alg != None {
		return alg
	}
	return English
}
