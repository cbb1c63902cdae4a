package scheduling

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"10:00:00", 600, false}, // TIME column format
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:05", "12:30", "23:59"} {
		m, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if got := FormatClock(m); got != s {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", s, got)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("17:45", 30)
	if err != nil {
		t.Fatalf("AddMinutes(17:45, 30): %v", err)
	}
	if got != "18:15" {
		t.Errorf("AddMinutes(17:45, 30) = %q, want 18:15", got)
	}

	got, err = AddMinutes("09:50", 70)
	if err != nil {
		t.Fatalf("AddMinutes(09:50, 70): %v", err)
	}
	if got != "11:00" {
		t.Errorf("AddMinutes(09:50, 70) = %q, want 11:00", got)
	}
}

func TestAddMinutes_PastMidnight(t *testing.T) {
	// 23:50 + 30m must be rejected, not wrapped to 00:20 on the wrong date.
	if _, err := AddMinutes("23:50", 30); !errors.Is(err, ErrPastMidnight) {
		t.Errorf("expected ErrPastMidnight, got %v", err)
	}
	// A result landing exactly on midnight is equally out of range.
	if _, err := AddMinutes("23:30", 30); !errors.Is(err, ErrPastMidnight) {
		t.Errorf("expected ErrPastMidnight at exact midnight, got %v", err)
	}
}
