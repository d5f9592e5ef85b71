package stopword

import (
	"testing"

	"golang.org/x/text/language"
)

func TestBundledSets(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		word string
	}{
		{language.English, "the"},
		{language.French, "les"},
		{language.Spanish, "para"},
		{language.Russian, "что"},
	}
	for _, tc := range tests {
		set, ok := Set(tc.tag)
		if !ok {
			t.Fatalf("no bundled set for %v", tc.tag)
		}
		if !set.Contains(tc.word) {
			t.Errorf("%v set should contain %q", tc.tag, tc.word)
		}
		if set.Contains("skibidi") {
			t.Errorf("%v set should not contain domain vocabulary", tc.tag)
		}
	}
}

func TestNoSetForUncoveredLanguage(t *testing.T) {
	if _, ok := Set(language.German); ok {
		t.Error("no German set is bundled")
	}
	if _, ok := Words(language.German); ok {
		t.Error("no German word list is bundled")
	}
}

func TestWordsMatchSet(t *testing.T) {
	for _, tag := range []language.Tag{
		language.English, language.French, language.Spanish, language.Russian,
	} {
		words, ok := Words(tag)
		if !ok {
			t.Fatalf("no word list for %v", tag)
		}
		set, _ := Set(tag)
		for _, w := range words {
			if !set.Contains(w) {
				t.Errorf("%v: %q listed but missing from set", tag, w)
			}
		}
	}
}
