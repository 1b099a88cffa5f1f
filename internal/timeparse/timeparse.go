// Package timeparse parses the time-point syntax accepted by the
// --changed-after and --changed-before flags.
package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ageUnits maps relative-age unit suffixes to their durations.
var ageUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
	// Aliases
	"day":   24 * time.Hour,
	"days":  24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"weeks": 7 * 24 * time.Hour,
}

// absoluteFormats are tried in order for absolute time points. Date
// and datetime forms are interpreted as UTC; RFC3339 carries its own
// zone.
var absoluteFormats = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
}

// ParsePoint parses s as a point in time. Two syntaxes are accepted:
//
//   - a relative age, a number with a unit suffix ("90s", "10h", "2d",
//     "3weeks"), resolved as that long before now;
//   - an absolute time: "2018-10-27", "2018-10-27 10:00:00", or
//     RFC3339 like "2018-10-27T10:00:00Z".
func ParsePoint(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}

	if age, ok, err := parseAge(s); ok {
		if err != nil {
			return time.Time{}, err
		}
		return now.Add(-age), nil
	}

	for _, format := range absoluteFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf(
		"invalid time %q (expected an age like 2d, or YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, RFC3339)", s)
}

// parseAge attempts to parse s as a relative age. ok reports whether
// s has the digits-then-letters shape of an age at all; err reports a
// malformed age once that shape is established.
func parseAge(s string) (age time.Duration, ok bool, err error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, false, nil
	}

	num, parseErr := strconv.ParseInt(s[:i], 10, 64)
	if parseErr != nil {
		return 0, true, fmt.Errorf("invalid age %q: %w", s, parseErr)
	}

	unit, known := ageUnits[s[i:]]
	if !known {
		// Could still be an absolute form such as "2018-10-27".
		return 0, false, nil
	}

	if num > math.MaxInt64/int64(unit) {
		return 0, true, fmt.Errorf("invalid age %q: value too large", s)
	}

	return time.Duration(num) * unit, true, nil
}
