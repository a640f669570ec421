package output

import (
	"reflect"
	"testing"
)

func TestInlineRuns(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []inlineRun
	}{
		{"plain", "그냥 문장", []inlineRun{{Text: "그냥 문장"}}},
		{"bold", "**AI** 개념", []inlineRun{{Text: "AI", Bold: true}, {Text: " 개념"}}},
		{"underscore bold", "a __b__ c", []inlineRun{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}}},
		{"code", "run `go test` now", []inlineRun{{Text: "run "}, {Text: "go test", Code: true}, {Text: " now"}}},
		{"keyword bracket", "【핵심】 정리", []inlineRun{{Text: "【핵심】", Bold: true}, {Text: " 정리"}}},
		{"unclosed marker", "**열린 강조", []inlineRun{{Text: "열린 강조"}}},
		{"only markers", "****", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inlineRuns(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("inlineRuns(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
