package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"America/Sao_Paulo", true},
		{"UTC", true},
		{"Mars/Olympus_Mons", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.tz); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}

func TestLocationFallsBack(t *testing.T) {
	if got := Location("Mars/Olympus_Mons"); got.String() != DefaultTimezone {
		t.Fatalf("Location = %s, want %s", got, DefaultTimezone)
	}
	if got := Location("UTC"); got.String() != "UTC" {
		t.Fatalf("Location = %s, want UTC", got)
	}
}

func TestMidnight(t *testing.T) {
	loc := Location("America/Sao_Paulo")
	in := time.Date(2026, 1, 5, 23, 59, 59, 0, loc)

	got := Midnight(in, loc)
	want := time.Date(2026, 1, 5, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("Midnight = %v, want %v", got, want)
	}
}

func TestMidnightConvertsFirst(t *testing.T) {
	loc := Location("America/Sao_Paulo")
	// 01:00 UTC on Jan 6 is still Jan 5 in Sao Paulo (UTC-3)
	in := time.Date(2026, 1, 6, 1, 0, 0, 0, time.UTC)

	got := Midnight(in, loc)
	want := time.Date(2026, 1, 5, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("Midnight = %v, want %v", got, want)
	}
}
