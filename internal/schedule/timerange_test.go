package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

func str(s string) *string { return &s }

func tr(start, end string) model.TimeRange {
	return model.TimeRange{Start: str(start), End: str(end)}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		in     *string
		want   int
		wantOK bool
	}{
		{str("00:00"), 0, true},
		{str("09:30"), 570, true},
		{str("23:59"), 1439, true},
		{str("24:00"), 0, false},
		{str("12:60"), 0, false},
		{str("-1:00"), 0, false},
		{str("9am"), 0, false},
		{str(""), 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := MinuteOfDay(c.in)
		assert.Equal(t, c.wantOK, ok)
		if c.wantOK {
			assert.Equal(t, c.want, got)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name string
		a, b model.TimeRange
		want bool
	}{
		{"disjoint normal", tr("09:00", "11:00"), tr("12:00", "13:00"), false},
		{"nested normal", tr("09:00", "17:00"), tr("10:00", "11:00"), true},
		{"touching boundary is not overlap", tr("09:00", "17:00"), tr("17:00", "18:00"), false},
		{"one minute over the boundary", tr("09:00", "17:00"), tr("16:59", "18:00"), true},
		{"identical", tr("08:00", "10:00"), tr("08:00", "10:00"), true},
		{"overnight hits late-evening half", tr("22:00", "02:00"), tr("23:00", "23:30"), true},
		{"overnight hits early-morning half", tr("22:00", "02:00"), tr("01:00", "03:00"), true},
		{"overnight misses midday", tr("22:00", "02:00"), tr("10:00", "12:00"), false},
		{"overnight end touching normal start", tr("22:00", "02:00"), tr("02:00", "04:00"), false},
		{"zero-width overlaps nothing", tr("09:00", "09:00"), tr("00:00", "23:59"), false},
		{"two zero-width ranges", tr("09:00", "09:00"), tr("09:00", "09:00"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, RangesOverlap(c.a, c.b))
			// the predicate must be symmetric
			assert.Equal(t, c.want, RangesOverlap(c.b, c.a))
		})
	}
}

func TestRangesOverlapBothOvernight(t *testing.T) {
	// Two ranges that each wrap midnight always report overlap, even when
	// their literal spans are disjoint. Documented policy, not an accident.
	pairs := [][2]model.TimeRange{
		{tr("22:00", "02:00"), tr("23:00", "01:00")},
		{tr("23:00", "00:30"), tr("23:45", "00:15")},
		{tr("20:00", "06:00"), tr("22:00", "04:00")},
		{tr("23:59", "00:01"), tr("18:00", "09:00")},
	}
	for _, p := range pairs {
		assert.True(t, RangesOverlap(p[0], p[1]))
		assert.True(t, RangesOverlap(p[1], p[0]))
	}
}

func TestRangesOverlapUnevaluable(t *testing.T) {
	full := tr("00:00", "23:59")

	missingStart := model.TimeRange{End: str("12:00")}
	missingEnd := model.TimeRange{Start: str("12:00")}
	garbage := tr("noon", "13:00")

	for _, r := range []model.TimeRange{missingStart, missingEnd, garbage, {}} {
		assert.False(t, RangesOverlap(r, full))
		assert.False(t, RangesOverlap(full, r))
	}
}

func TestRangeEvaluable(t *testing.T) {
	require.True(t, RangeEvaluable(tr("09:00", "17:00")))
	require.False(t, RangeEvaluable(model.TimeRange{Start: str("09:00")}))
	require.False(t, RangeEvaluable(model.TimeRange{End: str("17:00")}))
	require.False(t, RangeEvaluable(tr("9:xx", "17:00")))
	require.False(t, RangeEvaluable(model.TimeRange{}))
}
