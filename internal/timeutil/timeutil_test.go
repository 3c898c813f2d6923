// ABOUTME: Tests for time parsing, formatting, and effort calculations.
package timeutil

import (
	"math"
	"testing"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{25.34, "25.340"},
		{63.45, "1:03.450"},
		{60, "1:00.000"},
		{125.5, "2:05.500"},
		{0, "--"},
		{math.NaN(), "--"},
	}
	for _, c := range cases {
		if got := FormatSeconds(c.in); got != c.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseInput(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"25.340", 25.34},
		{"1:03.450", 63.45},
		{"2:05.5", 125.5},
		{"60", 60},
	}
	for _, c := range cases {
		got, err := ParseInput(c.in)
		if err != nil {
			t.Errorf("ParseInput(%q) error: %v", c.in, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ParseInput(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "abc", "1:xx", ":", "x:30"} {
		if _, err := ParseInput(bad); err == nil {
			t.Errorf("ParseInput(%q): expected error", bad)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"25.340", "1:03.450"} {
		secs, err := ParseInput(s)
		if err != nil {
			t.Fatalf("ParseInput(%q): %v", s, err)
		}
		if got := FormatSeconds(secs); got != s {
			t.Errorf("round trip %q -> %v -> %q", s, secs, got)
		}
	}
}

func TestResultSeconds(t *testing.T) {
	// 60s best at 80% effort slows down by 20%.
	got := ResultSeconds(60, 0.8)
	if math.Abs(got-72) > 1e-9 {
		t.Errorf("ResultSeconds(60, 0.8) = %v, want 72", got)
	}
	// Full effort is the best time itself.
	if got := ResultSeconds(60, 1.0); math.Abs(got-60) > 1e-9 {
		t.Errorf("ResultSeconds(60, 1.0) = %v, want 60", got)
	}
}

func TestEffortPercent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"80%", 0.8},
		{"80", 0.8},
		{"100%", 1.0},
		{"", 0.8},
		{"junk", 0.8},
	}
	for _, c := range cases {
		if got := EffortPercent(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("EffortPercent(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDistanceValue(t *testing.T) {
	cases := []struct{ in, want string }{
		{"100m", "100"},
		{"50y", "50"},
		{"100M", "100"},
		{"200", "200"},
		{"", ""},
	}
	for _, c := range cases {
		if got := DistanceValue(c.in); got != c.want {
			t.Errorf("DistanceValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
