package timeutil

import (
	"testing"
	"time"
)

func TestParseAge(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"2w", 2 * week},
		{"1w2d6h30m", week + 2*day + 6*time.Hour + 30*time.Minute},
		{" 3 days ", 3 * day},
		{"90MIN", 90 * time.Minute},
	}
	for _, tc := range cases {
		got, err := ParseAge(tc.in)
		if err != nil {
			t.Errorf("ParseAge(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAge(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseAgeInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3y", "0d", "5"} {
		if _, err := ParseAge(in); err == nil {
			t.Errorf("ParseAge(%q) should fail", in)
		}
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		then time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-(26*time.Hour + 10*time.Minute)), "1d2h"},
		{now.Add(-(week + day + time.Hour)), "1w1d"},
		{now.Add(-(week + 3*time.Hour)), "1w"},
	}
	for _, tc := range cases {
		if got := Ago(now, tc.then); got != tc.want {
			t.Errorf("Ago(%v) = %q, want %q", now.Sub(tc.then), got, tc.want)
		}
	}
}

func TestWithin(t *testing.T) {
	now := time.UnixMilli(10 * day.Milliseconds())
	if !Within(now, 0, 0) {
		t.Error("zero age should accept everything")
	}
	if !Within(now, now.Add(-day).UnixMilli(), 2*day) {
		t.Error("one day old group should be within two days")
	}
	if Within(now, now.Add(-3*day).UnixMilli(), 2*day) {
		t.Error("three day old group should not be within two days")
	}
}
