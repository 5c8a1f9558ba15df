package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

func TestValidateAccumulatesStructuralErrors(t *testing.T) {
	v := NewValidator(NewStore())

	// nothing set: missing channels, creative and name all reported at once
	res := v.Validate(model.Placement{})
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 3)
	assert.Empty(t, res.Conflicts)
}

func TestValidateDateOrder(t *testing.T) {
	v := NewValidator(NewStore())

	p := placement(0, "promo", []int{1}, "General")
	p.Window = model.DateWindow{Start: date(2025, time.June, 1), End: date(2025, time.May, 1)}

	res := v.Validate(p)
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "start date")
}

func TestValidateTimeRangeShape(t *testing.T) {
	v := NewValidator(NewStore())

	p := placement(0, "promo", []int{1}, "General")
	p.TimeRanges = []model.TimeRange{
		{Start: str("09:00")},          // half-specified
		tr("25:00", "11:00"),           // bad start
		tr("09:00", "9pm"),             // bad end
		{},                             // fully unset is fine: no constraint
		tr("10:00", "11:00"),           // fine
	}

	res := v.Validate(p)
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 3)
}

func TestValidateConflictsAreAdvisory(t *testing.T) {
	store := NewStore()
	peer := placement(5, "existing", []int{1}, "General")
	peer.TimeRanges = []model.TimeRange{tr("09:00", "17:00")}
	store.Upsert(peer)

	v := NewValidator(store)

	p := placement(0, "promo", []int{1}, "General")
	p.TimeRanges = []model.TimeRange{tr("10:00", "11:00")}

	res := v.Validate(p)
	// conflicts surface but do not invalidate; the caller picks the policy
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, 5, res.Conflicts[0].PeerID)
	assert.Equal(t, "existing", res.Conflicts[0].PeerLabel)
}

func TestValidateCleanCandidate(t *testing.T) {
	v := NewValidator(NewStore())

	p := placement(0, "promo", []int{1}, "Sports")
	p.TimeRanges = []model.TimeRange{tr("10:00", "11:00")}
	p.Window = model.DateWindow{Start: date(2025, time.January, 1), End: date(2025, time.December, 31)}
	p.Days = model.WeekMask{Monday: true, Wednesday: true}

	res := v.Validate(p)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Conflicts)
}

func TestValidateEditDoesNotConflictWithSelf(t *testing.T) {
	store := NewStore()
	existing := placement(9, "mine", []int{1}, "General")
	existing.TimeRanges = []model.TimeRange{tr("09:00", "11:00")}
	store.Upsert(existing)

	v := NewValidator(store)

	edited := existing
	edited.TimeRanges = []model.TimeRange{tr("09:00", "12:00")}

	res := v.Validate(edited)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Conflicts)
}
