package util

import (
	"reflect"
	"testing"
)

func TestSplitCommaSeparated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "migrate", []string{"migrate"}},
		{"multiple", "migrate,branch,retail", []string{"migrate", "branch", "retail"}},
		{"whitespace", " migrate , branch ", []string{"migrate", "branch"}},
		{"trailing comma", "migrate,", []string{"migrate"}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCommaSeparated(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCommaSeparated(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
