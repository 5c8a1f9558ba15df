package schedule

import (
	"time"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

// maskDays flattens a WeekMask into Monday-first order.
func maskDays(m model.WeekMask) [7]bool {
	return [7]bool{m.Monday, m.Tuesday, m.Wednesday, m.Thursday, m.Friday, m.Saturday, m.Sunday}
}

// MaskEmpty reports whether no weekday is selected. An empty mask means the
// placement runs every day; it is a default, not an absence of schedule.
func MaskEmpty(m model.WeekMask) bool {
	for _, d := range maskDays(m) {
		if d {
			return false
		}
	}
	return true
}

// DaysOverlap reports whether two week masks share at least one weekday.
// Either mask being empty counts as "all days" and intersects anything.
func DaysOverlap(a, b model.WeekMask) bool {
	if MaskEmpty(a) || MaskEmpty(b) {
		return true
	}
	ad, bd := maskDays(a), maskDays(b)
	for i := range ad {
		if ad[i] && bd[i] {
			return true
		}
	}
	return false
}

// MaskIncludes reports whether the mask selects the given weekday, with the
// empty mask matching every day.
func MaskIncludes(m model.WeekMask, day time.Weekday) bool {
	if MaskEmpty(m) {
		return true
	}
	// time.Weekday is Sunday-first; maskDays is Monday-first.
	idx := (int(day) + 6) % 7
	return maskDays(m)[idx]
}
