// Package timeutil parses and renders the compact ages used to describe when
// tab groups were saved, such as "2w" or "3d12h".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var (
	segment = regexp.MustCompile(`^(\d+)\s*([a-z]+)\s*`)
	units   = map[string]time.Duration{
		"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
		"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": week, "wk": week, "wks": week, "week": week, "weeks": week,
	}
	// largest first
	steps = []struct {
		label string
		value time.Duration
	}{
		{"w", week},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
	}
)

// ParseAge parses an age like "2w" or "1w2d6h". An empty input means no
// limit and yields zero.
func ParseAge(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, nil
	}

	var total time.Duration
	for remaining != "" {
		m := segment.FindStringSubmatch(remaining)
		if m == nil {
			return 0, fmt.Errorf("invalid age %q", input)
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid age %q: %w", input, err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported age unit %q", m[2])
		}
		total += time.Duration(n) * unit
		remaining = remaining[len(m[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("age must be greater than zero")
	}
	return total, nil
}

// Ago renders the time between then and now in at most two units, e.g.
// "3d4h". The second unit is the next smaller one; a zero there ends the
// text early, so one week and three hours is "1w". Under a minute is "now".
func Ago(now, then time.Time) string {
	d := now.Sub(then)
	if d < time.Minute {
		return "now"
	}
	var parts []string
	for _, s := range steps {
		if d < s.value {
			if len(parts) > 0 {
				break
			}
			continue
		}
		n := d / s.value
		d -= n * s.value
		parts = append(parts, fmt.Sprintf("%d%s", n, s.label))
		if len(parts) == 2 {
			break
		}
	}
	return strings.Join(parts, "")
}

// Within reports whether a group saved at dateAdded (epoch milliseconds) is
// no older than maxAge. A zero maxAge accepts everything.
func Within(now time.Time, dateAdded int64, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return true
	}
	return now.Sub(time.UnixMilli(dateAdded)) <= maxAge
}
