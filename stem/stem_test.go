package stem

import (
	"testing"

	"golang.org/x/text/language"
)

func TestForKnownLanguages(t *testing.T) {
	for _, tag := range []language.Tag{
		language.English, language.Spanish, language.French,
		language.Russian, language.Swedish, language.Norwegian,
		language.Hungarian,
	} {
		if _, ok := For(tag); !ok {
			t.Errorf("expected a stemmer for %v", tag)
		}
	}
	for _, tag := range []language.Tag{language.German, language.Japanese} {
		if _, ok := For(tag); ok {
			t.Errorf("unexpected stemmer for %v", tag)
		}
	}
}

func TestShortWordsPassThrough(t *testing.T) {
	for _, tag := range []language.Tag{language.English, language.Spanish, language.Russian} {
		f, ok := For(tag)
		if !ok {
			t.Fatalf("no stemmer for %v", tag)
		}
		for _, w := range []string{"", "a", "de", "из"} {
			if got := f(w); got != w {
				t.Errorf("%v: expected %q untouched, got %q", tag, w, got)
			}
		}
	}
}

func TestSpanishStemming(t *testing.T) {
	f, _ := For(language.Spanish)
	in := "corriendo"
	got := f(in)
	if got == "" || len(got) > len(in) {
		t.Errorf("Spanish stem of %q looks wrong: %q", in, got)
	}
	if again := f(in); again != got {
		t.Errorf("Spanish stemmer not deterministic: %q vs %q", got, again)
	}
}

func TestLanguagesListsEnglish(t *testing.T) {
	found := false
	for _, tag := range Languages() {
		if tag == language.English {
			found = true
		}
	}
	if !found {
		t.Error("Languages() should include English")
	}
}
