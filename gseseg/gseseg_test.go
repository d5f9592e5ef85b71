package gseseg

import "testing"

func TestSegmentChinese(t *testing.T) {
	seg, err := New()
	if err != nil {
		t.Fatalf("loading dictionary: %v", err)
	}
	spans, err := seg.Segment("我喜欢学习中文")
	if err != nil {
		t.Fatalf("segmenting: %v", err)
	}
	if len(spans) < 2 {
		t.Fatalf("expected several spans, got %v", spans)
	}
	var joined string
	for _, s := range spans {
		joined += s
	}
	if joined != "我喜欢学习中文" {
		t.Errorf("spans do not cover the input: %q", joined)
	}
}

func TestSegmentMixedScript(t *testing.T) {
	seg, err := New()
	if err != nil {
		t.Fatalf("loading dictionary: %v", err)
	}
	spans, err := seg.Segment("用go写代码")
	if err != nil {
		t.Fatalf("segmenting: %v", err)
	}
	found := false
	for _, s := range spans {
		if s == "go" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the latin run to survive as one span, got %v", spans)
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
