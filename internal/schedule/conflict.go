package schedule

import (
	"strings"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

// DefaultCategory is the grouping key placements fall into when no category
// is set. An empty and an unset category are the same slot class.
const DefaultCategory = "General"

// AllDay is the sentinel overlap bound reported when a side of a conflict
// has no evaluable time range and is treated as occupying the whole day.
const AllDay = "All Day"

// NormalizeCategory maps empty or whitespace-only categories onto
// DefaultCategory. Both sides of every category comparison go through this.
func NormalizeCategory(category string) string {
	c := strings.TrimSpace(category)
	if c == "" {
		return DefaultCategory
	}
	return c
}

// hasEvaluableRange reports whether any range in the list has both endpoints
// set and parseable. A placement without one occupies the entire day.
func hasEvaluableRange(ranges []model.TimeRange) bool {
	for _, r := range ranges {
		if RangeEvaluable(r) {
			return true
		}
	}
	return false
}

// FindConflicts enumerates every active peer that collides with the
// candidate. A peer collides when it shares a channel and the candidate's
// normalized category, its date window intersects the candidate's, the week
// masks share a day, and some pair of daily time ranges overlaps. Peers with
// the candidate's own id are skipped so edit flows do not conflict with the
// record being replaced.
//
// The list is complete, not first-hit: callers surface every conflict to the
// user. Each conflict reports the peer's own range bounds rather than the
// computed intersection, matching what the conflict dialog displays.
func FindConflicts(candidate model.Placement, peers []model.Placement) []model.Conflict {
	category := NormalizeCategory(candidate.Category)
	wanted := make(map[int]struct{}, len(candidate.ChannelIDs))
	for _, id := range candidate.ChannelIDs {
		wanted[id] = struct{}{}
	}
	candidateAllDay := !hasEvaluableRange(candidate.TimeRanges)

	var conflicts []model.Conflict
	for _, peer := range peers {
		if !peer.Active || peer.ID == candidate.ID {
			continue
		}
		if NormalizeCategory(peer.Category) != category {
			continue
		}
		if !channelsIntersect(wanted, peer.ChannelIDs) {
			continue
		}
		if !WindowsOverlap(candidate.Window, peer.Window) {
			continue
		}
		if !DaysOverlap(candidate.Days, peer.Days) {
			continue
		}

		hit := false
		for _, cr := range candidate.TimeRanges {
			for _, pr := range peer.TimeRanges {
				if RangesOverlap(cr, pr) {
					conflicts = append(conflicts, model.Conflict{
						PeerID:       peer.ID,
						PeerLabel:    peer.Name,
						OverlapStart: *pr.Start,
						OverlapEnd:   *pr.End,
					})
					hit = true
				}
			}
		}

		// A side with no evaluable range occupies the whole day, so the
		// date/day agreement above is already a collision.
		if !hit && (candidateAllDay || !hasEvaluableRange(peer.TimeRanges)) {
			conflicts = append(conflicts, model.Conflict{
				PeerID:       peer.ID,
				PeerLabel:    peer.Name,
				OverlapStart: AllDay,
				OverlapEnd:   AllDay,
			})
		}
	}
	return conflicts
}
