// Package scheduling implements the wall-clock arithmetic behind
// availability computation and booking validation. Times are "HH:mm"
// strings handled as minutes since midnight; nothing here crosses a
// day boundary.
package scheduling

import (
	"errors"
	"fmt"
)

const minutesPerDay = 24 * 60

var (
	// ErrBadClock reports a string that is not a valid HH:mm time of day.
	ErrBadClock = errors.New("invalid time of day")
	// ErrPastMidnight reports arithmetic that would cross the day boundary.
	ErrPastMidnight = errors.New("time arithmetic crosses midnight")
)

// ParseClock converts "HH:mm" (or "HH:mm:ss", as the database emits for
// TIME columns) to minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m, sec int
	switch n, _ := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); n {
	case 2, 3:
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight back to "HH:mm".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes computes start + d as "HH:mm". A result at or past midnight
// is an error, never a silent wrap onto the wrong date.
func AddMinutes(start string, d int) (string, error) {
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	end := m + d
	if end >= minutesPerDay {
		return "", fmt.Errorf("%w: %s + %dm", ErrPastMidnight, start, d)
	}
	return FormatClock(end), nil
}
