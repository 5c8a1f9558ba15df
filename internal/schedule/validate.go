package schedule

import (
	"fmt"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

// Validator checks candidate placements against structural rules and the
// active set held by its store. Construct one per store; it holds no other
// state and is safe for concurrent use.
type Validator struct {
	store *Store
}

func NewValidator(store *Store) *Validator {
	return &Validator{store: store}
}

// Validate runs every structural check (accumulating, never short-circuiting)
// and then the conflict scan over a single snapshot of the store. Structural
// errors make the candidate invalid; conflicts are advisory and left to the
// caller's block-or-warn policy.
func (v *Validator) Validate(candidate model.Placement) model.ValidationResult {
	errs := structuralErrors(candidate)

	peers := v.store.ListActiveByChannelAndCategory(
		candidate.ChannelIDs,
		NormalizeCategory(candidate.Category),
	)
	conflicts := FindConflicts(candidate, peers)

	return model.ValidationResult{
		IsValid:   len(errs) == 0,
		Errors:    errs,
		Conflicts: conflicts,
	}
}

func structuralErrors(candidate model.Placement) []string {
	var errs []string

	if len(candidate.ChannelIDs) == 0 {
		errs = append(errs, "at least one channel is required")
	}
	if candidate.CreativeID == nil {
		errs = append(errs, "a creative is required")
	}
	if candidate.Name == "" {
		errs = append(errs, "a name is required")
	}
	if candidate.Window.Start != nil && candidate.Window.End != nil &&
		candidate.Window.Start.After(*candidate.Window.End) {
		errs = append(errs, "start date must not be after end date")
	}

	for i, r := range candidate.TimeRanges {
		startSet := r.Start != nil
		endSet := r.End != nil
		if startSet != endSet {
			// Half-specified is user error, not "no constraint".
			errs = append(errs, fmt.Sprintf("time range %d has only one of start/end set", i+1))
			continue
		}
		if !startSet {
			continue
		}
		if _, ok := MinuteOfDay(r.Start); !ok {
			errs = append(errs, fmt.Sprintf("time range %d has an invalid start time %q", i+1, *r.Start))
		}
		if _, ok := MinuteOfDay(r.End); !ok {
			errs = append(errs, fmt.Sprintf("time range %d has an invalid end time %q", i+1, *r.End))
		}
	}

	return errs
}
