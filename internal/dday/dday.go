// Package dday computes signed calendar-day distances to a target date.
package dday

import (
	"fmt"
	"math"
	"time"
)

// DaysRemaining returns the whole calendar days between today and target.
// Both dates are normalized to midnight first, so the time-of-day of either
// argument never influences the result. Positive means the target is ahead,
// zero means the target is today, negative means it has passed.
// The second return is false when target is nil.
func DaysRemaining(target *time.Time, today time.Time) (int, bool) {
	if target == nil {
		return 0, false
	}
	t := midnight(*target)
	d := midnight(today)
	// Ceil absorbs the odd-length days around DST transitions.
	return int(math.Ceil(t.Sub(d).Hours() / 24)), true
}

// Label renders the day count in the D-day convention:
// D-3 (three days left), D-Day (today), D+4 (four days past).
func Label(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	case days < 0:
		return fmt.Sprintf("D+%d", -days)
	default:
		return "D-Day"
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
