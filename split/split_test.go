package split

import (
	"reflect"
	"testing"
)

func collect(input string) (spans []string, kinds []Kind) {
	sc := NewScanner(input)
	for sc.Next() {
		spans = append(spans, sc.Text())
		kinds = append(kinds, sc.Kind())
	}
	return spans, kinds
}

func TestWordRuns(t *testing.T) {
	spans, _ := collect("zoomer slang rocks")
	if want := []string{"zoomer", "slang", "rocks"}; !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

func TestPunctuationDiscarded(t *testing.T) {
	spans, _ := collect("rocks, !!! (yes)...")
	if want := []string{"rocks", "yes"}; !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

func TestDigitRunsAreSeparateSpans(t *testing.T) {
	spans, kinds := collect("x86 is 64bit")
	if want := []string{"x", "86", "is", "64", "bit"}; !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
	wantKinds := []Kind{Alphabetic, Numeric, Alphabetic, Numeric, Alphabetic}
	if !reflect.DeepEqual(kinds, wantKinds) {
		t.Errorf("expected kinds %v, got %v", wantKinds, kinds)
	}
}

func TestEmptyAndBoundaryOnlyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "—!…"} {
		if spans, _ := collect(input); len(spans) != 0 {
			t.Errorf("input %q: expected no spans, got %v", input, spans)
		}
	}
}

func TestNonLatinLetters(t *testing.T) {
	spans, _ := collect("русский текст 42")
	if want := []string{"русский", "текст", "42"}; !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

// A fresh scanner over the same input restarts the iteration.
func TestRestartable(t *testing.T) {
	input := "one two"
	first, _ := collect(input)
	second, _ := collect(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("restart diverged: %v vs %v", first, second)
	}
}

func TestCombiningMarksStayWordInternal(t *testing.T) {
	spans, _ := collect("élève sept")
	if want := []string{"élève", "sept"}; !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}
