package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

func TestActiveAtPicksCoveringPlacement(t *testing.T) {
	morning := placement(1, "morning", []int{1}, "General")
	morning.TimeRanges = []model.TimeRange{tr("06:00", "12:00")}

	evening := placement(2, "evening", []int{1}, "General")
	evening.TimeRanges = []model.TimeRange{tr("18:00", "23:00")}

	// 2025-03-05 is a Wednesday
	at := time.Date(2025, time.March, 5, 9, 30, 0, 0, time.UTC)

	got, ok := ActiveAt([]model.Placement{morning, evening}, 1, at)
	require.True(t, ok)
	assert.Equal(t, 1, got.ID)

	_, ok = ActiveAt([]model.Placement{morning, evening}, 1, at.Add(5*time.Hour))
	assert.False(t, ok)
}

func TestActiveAtPriorityWins(t *testing.T) {
	base := placement(1, "base", []int{1}, "General")
	base.TimeRanges = []model.TimeRange{tr("00:00", "23:59")}

	takeover := placement(2, "takeover", []int{1}, "General")
	takeover.TimeRanges = []model.TimeRange{tr("09:00", "10:00")}
	takeover.Priority = 10

	at := time.Date(2025, time.March, 5, 9, 30, 0, 0, time.UTC)
	got, ok := ActiveAt([]model.Placement{base, takeover}, 1, at)
	require.True(t, ok)
	assert.Equal(t, 2, got.ID)
}

func TestActiveAtOvernightWrap(t *testing.T) {
	night := placement(1, "night", []int{1}, "General")
	night.TimeRanges = []model.TimeRange{tr("22:00", "02:00")}

	late := time.Date(2025, time.March, 5, 23, 15, 0, 0, time.UTC)
	early := time.Date(2025, time.March, 6, 1, 15, 0, 0, time.UTC)
	midday := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

	_, ok := ActiveAt([]model.Placement{night}, 1, late)
	assert.True(t, ok)
	_, ok = ActiveAt([]model.Placement{night}, 1, early)
	assert.True(t, ok)
	_, ok = ActiveAt([]model.Placement{night}, 1, midday)
	assert.False(t, ok)
}

func TestActiveAtRespectsDateAndDays(t *testing.T) {
	p := placement(1, "weekday promo", []int{1}, "General")
	p.Days = model.WeekMask{Monday: true}
	p.Window = model.DateWindow{Start: date(2025, time.March, 1), End: date(2025, time.March, 31)}

	monday := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC)
	aprilMonday := time.Date(2025, time.April, 7, 12, 0, 0, 0, time.UTC)

	_, ok := ActiveAt([]model.Placement{p}, 1, monday)
	assert.True(t, ok)
	_, ok = ActiveAt([]model.Placement{p}, 1, tuesday)
	assert.False(t, ok)
	_, ok = ActiveAt([]model.Placement{p}, 1, aprilMonday)
	assert.False(t, ok)

	// untimed placements run all day on selected days
	_, ok = ActiveAt([]model.Placement{p}, 2, monday)
	assert.False(t, ok)
}
