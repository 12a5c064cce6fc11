package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastMatches(t *testing.T) {
	tests := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"TF", "TF", true},
		{"TF", "tf", true},
		{"TF", "Tf", true},
		{"TF", "  TF\t", true},
		{"TF", "\nte ", false},
		{"TF", "TFX", false},
		{"TF", "T F", false},
		{"TF", "", false},
		{"TF", "   ", false},
		{"", "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FastMatches(tt.pattern, tt.candidate), "FastMatches(%q, %q)", tt.pattern, tt.candidate)
	}
}

func TestSplitFlags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"blank", "", []string{}},
		{"only separators", " , ;", []string{}},
		{"comma", "PF,TE", []string{"PF", "TE"}},
		{"spaces around", " TF , TE ", []string{"TF", "TE"}},
		{"semicolon and tab", "TF;PR\tSW", []string{"TF", "PR", "SW"}},
		{"keeps unknown", "ZZ,pf", []string{"ZZ", "pf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFlags(tt.input)
			assert.Len(t, got, len(tt.want))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
