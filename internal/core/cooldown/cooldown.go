// Package cooldown implements the time lock that throttles repeatable
// player actions.
package cooldown

import "time"

// Timestamp layouts accepted for persisted cooldown marks. New marks are
// written as RFC 3339; the naive layout covers records migrated from older
// deployments that stored local timestamps without a zone.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// Check reports whether the window has elapsed since the persisted mark.
//
// A missing or unparsable mark reports ready with zero remaining: bad data
// must never lock a player out permanently, so the gate fails open. Callers
// stamp a fresh mark only on the success path of the gated action, never on
// the check itself.
func Check(lastMark string, window time.Duration, now time.Time) (ready bool, remaining time.Duration) {
	if lastMark == "" {
		return true, 0
	}

	last, ok := parseMark(lastMark)
	if !ok {
		return true, 0
	}

	elapsed := now.Sub(last)
	if elapsed >= window {
		return true, 0
	}
	return false, window - elapsed
}

// Mark renders a timestamp in the canonical persisted layout.
func Mark(now time.Time) string {
	return now.Format(time.RFC3339Nano)
}

func parseMark(value string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
