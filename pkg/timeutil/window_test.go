package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"", 7 * 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"3d", 3 * 24 * time.Hour},
		{"1w2d", 9 * 24 * time.Hour},
		{"2d12h", 60 * time.Hour},
		{"45m", 45 * time.Minute},
	}
	for _, tc := range cases {
		got, err := ParseWindow(tc.input)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestParseWindowRejectsGarbage(t *testing.T) {
	for _, input := range []string{"x", "1y", "-1d", "0m"} {
		if _, err := ParseWindow(input); err == nil {
			t.Fatalf("%q: expected error", input)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	if got := FormatWindow(9 * 24 * time.Hour); got != "1w2d" {
		t.Fatalf("expected 1w2d, got %q", got)
	}
	if got := FormatWindow(0); got != "0m" {
		t.Fatalf("expected 0m, got %q", got)
	}
}
