package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "General", NormalizeCategory(""))
	assert.Equal(t, "General", NormalizeCategory("   "))
	assert.Equal(t, "Sports", NormalizeCategory("Sports"))
}

func placement(id int, name string, channels []int, category string) model.Placement {
	creative := id
	return model.Placement{
		ID:         id,
		Name:       name,
		ChannelIDs: channels,
		Category:   category,
		CreativeID: &creative,
		Active:     true,
	}
}

func TestFindConflictsCategoryScoping(t *testing.T) {
	candidate := placement(0, "candidate", []int{1}, "")
	candidate.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	sameCategory := placement(10, "blank category", []int{1}, "")
	sameCategory.TimeRanges = []model.TimeRange{tr("10:00", "12:00")}

	otherCategory := placement(11, "sports", []int{1}, "Sports")
	otherCategory.TimeRanges = []model.TimeRange{tr("10:00", "12:00")}

	conflicts := FindConflicts(candidate, []model.Placement{sameCategory, otherCategory})
	require.Len(t, conflicts, 1)
	assert.Equal(t, 10, conflicts[0].PeerID)
}

func TestFindConflictsChannelIntersection(t *testing.T) {
	candidate := placement(0, "candidate", []int{1, 2}, "General")
	candidate.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	sharesOne := placement(20, "shares channel 2", []int{2, 3}, "General")
	sharesOne.TimeRanges = []model.TimeRange{tr("09:30", "10:30")}

	sharesNone := placement(21, "different channels", []int{4, 5}, "General")
	sharesNone.TimeRanges = []model.TimeRange{tr("09:30", "10:30")}

	conflicts := FindConflicts(candidate, []model.Placement{sharesOne, sharesNone})
	require.Len(t, conflicts, 1)
	assert.Equal(t, 20, conflicts[0].PeerID)
}

func TestFindConflictsSelfExclusion(t *testing.T) {
	existing := placement(7, "myself", []int{1}, "General")
	existing.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	// editing placement 7: its stored copy must not count as a peer
	edited := existing
	edited.TimeRanges = []model.TimeRange{tr("09:00", "12:00")}

	assert.Empty(t, FindConflicts(edited, []model.Placement{existing}))
}

func TestFindConflictsInactivePeerIgnored(t *testing.T) {
	candidate := placement(0, "candidate", []int{1}, "General")
	candidate.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	inactive := placement(30, "disabled", []int{1}, "General")
	inactive.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}
	inactive.Active = false

	assert.Empty(t, FindConflicts(candidate, []model.Placement{inactive}))
}

func TestFindConflictsDateAndDayGating(t *testing.T) {
	candidate := placement(0, "candidate", []int{1}, "General")
	candidate.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}
	candidate.Window = model.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.January, 31)}
	candidate.Days = model.WeekMask{Monday: true}

	laterDates := placement(40, "february", []int{1}, "General")
	laterDates.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}
	laterDates.Window = model.DateWindow{Start: date(2025, time.February, 1)}

	otherDays := placement(41, "tuesdays", []int{1}, "General")
	otherDays.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}
	otherDays.Days = model.WeekMask{Tuesday: true}

	assert.Empty(t, FindConflicts(candidate, []model.Placement{laterDates, otherDays}))
}

func TestFindConflictsReportsPeerBounds(t *testing.T) {
	// end-to-end: one shared channel, blank categories, Wednesday overlap
	candidate := placement(0, "promo", []int{1}, "")
	candidate.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}
	candidate.Days = model.WeekMask{Wednesday: true}
	candidate.Window = model.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.January, 31)}

	peer := placement(50, "station ident", []int{1, 2}, "")
	peer.TimeRanges = []model.TimeRange{tr("10:00", "12:00")}
	peer.Days = model.WeekMask{Wednesday: true, Thursday: true}

	conflicts := FindConflicts(candidate, []model.Placement{peer})
	require.Len(t, conflicts, 1)
	assert.Equal(t, 50, conflicts[0].PeerID)
	assert.Equal(t, "station ident", conflicts[0].PeerLabel)
	// the peer's own bounds are reported, not the computed intersection
	assert.Equal(t, "10:00", conflicts[0].OverlapStart)
	assert.Equal(t, "12:00", conflicts[0].OverlapEnd)
}

func TestFindConflictsAllDayFallback(t *testing.T) {
	candidate := placement(0, "timed", []int{1}, "General")
	candidate.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	untimed := placement(60, "runs all day", []int{1}, "General")

	conflicts := FindConflicts(candidate, []model.Placement{untimed})
	require.Len(t, conflicts, 1)
	assert.Equal(t, AllDay, conflicts[0].OverlapStart)
	assert.Equal(t, AllDay, conflicts[0].OverlapEnd)

	// an untimed candidate conflicts with a timed peer the same way
	timedPeer := placement(61, "timed peer", []int{1}, "General")
	timedPeer.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	conflicts = FindConflicts(placement(0, "untimed", []int{1}, "General"), []model.Placement{timedPeer})
	require.Len(t, conflicts, 1)
	assert.Equal(t, AllDay, conflicts[0].OverlapStart)
}

func TestFindConflictsFallbackNotDoubled(t *testing.T) {
	// a peer with one evaluable and one half-specified range: the evaluable
	// range already produced a hit, so no All Day entry is added
	candidate := placement(0, "candidate", []int{1}, "General")
	candidate.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	peer := placement(70, "mixed ranges", []int{1}, "General")
	peer.TimeRanges = []model.TimeRange{
		tr("10:00", "12:00"),
		{Start: str("14:00")},
	}

	conflicts := FindConflicts(candidate, []model.Placement{peer})
	require.Len(t, conflicts, 1)
	assert.Equal(t, "10:00", conflicts[0].OverlapStart)
}

func TestFindConflictsEnumeratesEveryHit(t *testing.T) {
	candidate := placement(0, "candidate", []int{1}, "General")
	candidate.TimeRanges = []model.TimeRange{tr("08:00", "10:00"), tr("20:00", "22:00")}

	morning := placement(80, "morning", []int{1}, "General")
	morning.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}

	evening := placement(81, "evening", []int{1}, "General")
	evening.TimeRanges = []model.TimeRange{tr("21:00", "23:00")}

	doubled := placement(82, "both slots", []int{1}, "General")
	doubled.TimeRanges = []model.TimeRange{tr("09:30", "09:45"), tr("19:00", "21:00")}

	conflicts := FindConflicts(candidate, []model.Placement{morning, evening, doubled})
	require.Len(t, conflicts, 4)

	byPeer := map[int]int{}
	for _, c := range conflicts {
		byPeer[c.PeerID]++
	}
	assert.Equal(t, map[int]int{80: 1, 81: 1, 82: 2}, byPeer)
}
