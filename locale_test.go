package tokenizer

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestAlgorithmForLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tests := []struct {
		locale string
		want   Algorithm
	}{
		{"en", English},
		{"en-US", English},
		{"de-AT", German},
		{"pt-BR", Portuguese},
		{"es-MX", Spanish},
		{"ja-JP", Japanese},
		{"th", Thai},
		{"zz-ZZ", None},
		{"xx", None},
		{"", None},
	}
	for _, tc := range tests {
		if got := AlgorithmForLocale(tc.locale); got != tc.want {
			t.Errorf("AlgorithmForLocale(%q): expected %v, got %v", tc.locale, tc.want, got)
		}
	}
}

func TestDetectAlgorithmAlwaysUsable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	alg := DetectAlgorithm()
	if alg == None {
		t.Error("detection must fall back to a usable variant")
	}
}
