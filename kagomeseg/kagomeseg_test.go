package kagomeseg

import "testing"

func TestSegmentJapanese(t *testing.T) {
	seg, err := New()
	if err != nil {
		t.Fatalf("loading dictionary: %v", err)
	}
	spans, err := seg.Segment("日本語を勉強しています")
	if err != nil {
		t.Fatalf("segmenting: %v", err)
	}
	if len(spans) < 3 {
		t.Fatalf("expected several spans, got %v", spans)
	}
	var joined string
	for _, s := range spans {
		if s == "" {
			t.Error("empty span in output")
		}
		joined += s
	}
	if joined != "日本語を勉強しています" {
		t.Errorf("spans do not cover the input: %q", joined)
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	seg, err := New()
	if err != nil {
		t.Fatalf("loading dictionary: %v", err)
	}
	spans, err := seg.Segment("")
	if err != nil {
		t.Fatalf("segmenting: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected no spans for empty input, got %v", spans)
	}
}
