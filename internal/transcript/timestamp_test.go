package transcript

import (
	"errors"
	"math"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"00:00:00,000", 0},
		{"00:00:01,500", 1.5},
		{"00:01:02,000", 62},
		{"01:00:00,001", 3600.001},
		{" 12:34:56,789 ", 45296.789},
		{"99:59:59,999", 359999.999},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error = %v", tt.value, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseTimestampMillisecondExact(t *testing.T) {
	for h := 0; h < 3; h++ {
		for _, m := range []int{0, 7, 59} {
			for _, s := range []int{0, 31, 59} {
				for _, ms := range []int{0, 1, 99, 500, 999} {
					value := formatTimestamp(h, m, s, ms)
					got, err := ParseTimestamp(value)
					if err != nil {
						t.Fatalf("ParseTimestamp(%q) error = %v", value, err)
					}
					want := int64(((h*60+m)*60+s)*1000 + ms)
					if int64(math.Round(got*1000)) != want {
						t.Errorf("ParseTimestamp(%q)*1000 = %v, want %d", value, got*1000, want)
					}
				}
			}
		}
	}
}

func formatTimestamp(h, m, s, ms int) string {
	return pad(h, 2) + ":" + pad(m, 2) + ":" + pad(s, 2) + "," + pad(ms, 3)
}

func pad(n, width int) string {
	out := ""
	for i := 0; i < width; i++ {
		out = string(rune('0'+n%10)) + out
		n /= 10
	}
	return out
}

func TestParseTimestampInvalid(t *testing.T) {
	tests := []string{
		"",
		"00:00:01",
		"00:01,500",
		"00:00:01.500",
		"aa:00:01,500",
		"00:00:01,abc",
		"00:-1:01,500",
		"00:00:00:01,500",
		"00:00:01,500,1",
	}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			_, err := ParseTimestamp(value)
			if err == nil {
				t.Fatalf("ParseTimestamp(%q) expected error", value)
			}
			var tsErr *TimestampError
			if !errors.As(err, &tsErr) {
				t.Errorf("ParseTimestamp(%q) error type = %T, want *TimestampError", value, err)
			}
		})
	}
}
