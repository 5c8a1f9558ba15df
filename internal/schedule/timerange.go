package schedule

import (
	"strconv"
	"strings"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

const minutesPerDay = 24 * 60

// MinuteOfDay parses an "HH:MM" 24-hour string into minutes since midnight.
// The second return is false for nil, malformed or out-of-range input; the
// caller decides whether that is "no constraint" or a user error.
func MinuteOfDay(s *string) (int, bool) {
	if s == nil {
		return 0, false
	}
	parts := strings.SplitN(*s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// RangeEvaluable reports whether a time range has both endpoints present and
// parseable, i.e. whether it can be said to occupy any time at all.
func RangeEvaluable(r model.TimeRange) bool {
	if _, ok := MinuteOfDay(r.Start); !ok {
		return false
	}
	_, ok := MinuteOfDay(r.End)
	return ok
}

// RangesOverlap reports whether two daily time ranges share any wall-clock
// time. A range whose start minute exceeds its end minute is overnight: it
// runs from start to midnight and resumes until end. The four cases are kept
// separate on purpose; collapsing them hides the midnight edge cases.
func RangesOverlap(a, b model.TimeRange) bool {
	aStart, ok := MinuteOfDay(a.Start)
	if !ok {
		return false
	}
	aEnd, ok := MinuteOfDay(a.End)
	if !ok {
		return false
	}
	bStart, ok := MinuteOfDay(b.Start)
	if !ok {
		return false
	}
	bEnd, ok := MinuteOfDay(b.End)
	if !ok {
		return false
	}

	// A zero-width range occupies no time and overlaps nothing.
	if aStart == aEnd || bStart == bEnd {
		return false
	}

	aOvernight := aStart > aEnd
	bOvernight := bStart > bEnd

	switch {
	case aOvernight && bOvernight:
		// Both wrap, so both cover the midnight instant.
		return true
	case !aOvernight && !bOvernight:
		// Half-open intervals: a shared boundary is not an overlap.
		return aStart < bEnd && bStart < aEnd
	case aOvernight:
		return overnightOverlapsNormal(aStart, aEnd, bStart, bEnd)
	default:
		return overnightOverlapsNormal(bStart, bEnd, aStart, aEnd)
	}
}

// overnightOverlapsNormal splits the overnight range into [start, 1440) and
// [0, end) and checks the normal range against each half.
func overnightOverlapsNormal(oStart, oEnd, nStart, nEnd int) bool {
	if nStart < minutesPerDay && oStart < nEnd {
		return true
	}
	return nStart < oEnd
}
