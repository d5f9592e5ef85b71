package normalize

import (
	"sync"
	"testing"

	"golang.org/x/text/language"
)

func TestFoldLowercases(t *testing.T) {
	p := ProfileFor(language.English)
	if got := Text("ZOOMER Slang", p); got != "zoomer slang" {
		t.Errorf("expected 'zoomer slang', got %q", got)
	}
}

func TestTurkishDotlessI(t *testing.T) {
	p := ProfileFor(language.Turkish)
	if got := Text("DİYARBAKIR", p); got != "diyarbakır" {
		t.Errorf("expected 'diyarbakır', got %q", got)
	}
}

func TestDiacriticStripping(t *testing.T) {
	p := ProfileFor(language.English)
	if got := Text("naïve café", p); got != "naive cafe" {
		t.Errorf("expected 'naive cafe', got %q", got)
	}
}

func TestDiacriticsKeptForFrench(t *testing.T) {
	p := ProfileFor(language.French)
	if got := Text("Élève", p); got != "élève" {
		t.Errorf("expected 'élève', got %q", got)
	}
}

func TestCliticCollapsing(t *testing.T) {
	p := ProfileFor(language.English)
	tests := []struct{ in, want string }{
		{"that's", "that"},
		{"we'll", "we"},
		{"they've", "they"},
		{"won't", "won"},
		{"I'm", "i"},
		{"o'clock", "o'clock"}, // not a clitic; apostrophe stays for the splitter
		{"'quoted'", "'quoted'"},
	}
	for _, tc := range tests {
		if got := Text(tc.in, p); got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCurlyApostropheUnified(t *testing.T) {
	p := ProfileFor(language.English)
	if got := Text("that’s", p); got != "that" {
		t.Errorf("expected 'that', got %q", got)
	}
}

func TestTotality(t *testing.T) {
	p := ProfileFor(language.English)
	inputs := []string{"", "…—…", "平仮名", "\x00", "مرحبا"}
	for _, in := range inputs {
		Text(in, p) // must not panic; unrecognized characters pass through
	}
}

// The pooled mark-stripping transformers must serve concurrent callers.
func TestConcurrentNormalize(t *testing.T) {
	p := ProfileFor(language.English)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Text("Café Naïve", p); got != "cafe naive" {
					t.Errorf("expected 'cafe naive', got %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// Decomposed input must reach the splitter recomposed when the profile
// keeps diacritics.
func TestDecomposedInputRecomposed(t *testing.T) {
	p := ProfileFor(language.French)
	if got := Text("élève", p); got != "élève" {
		t.Errorf("expected %q, got %q", "élève", got)
	}
}
