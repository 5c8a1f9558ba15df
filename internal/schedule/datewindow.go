package schedule

import (
	"time"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

// Missing date bounds resolve to a horizon far outside any real schedule.
var (
	distantPast   = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	distantFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func windowBounds(w model.DateWindow) (time.Time, time.Time) {
	start, end := distantPast, distantFuture
	if w.Start != nil {
		start = *w.Start
	}
	if w.End != nil {
		end = *w.End
	}
	return start, end
}

// WindowsOverlap reports whether two inclusive date windows intersect. A nil
// bound is open-ended on that side.
func WindowsOverlap(a, b model.DateWindow) bool {
	aStart, aEnd := windowBounds(a)
	bStart, bEnd := windowBounds(b)
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// WindowContains reports whether the window covers the given date.
func WindowContains(w model.DateWindow, day time.Time) bool {
	start, end := windowBounds(w)
	return !day.Before(start) && !day.After(end)
}
