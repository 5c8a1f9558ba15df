package schedule

import (
	"time"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

// rangeCovers reports whether the range contains the given minute of day,
// wrapping past midnight for overnight ranges.
func rangeCovers(r model.TimeRange, minute int) bool {
	start, ok := MinuteOfDay(r.Start)
	if !ok {
		return false
	}
	end, ok := MinuteOfDay(r.End)
	if !ok {
		return false
	}
	if start == end {
		return false
	}
	if start > end {
		return minute >= start || minute < end
	}
	return minute >= start && minute < end
}

// ActiveAt picks the placement playing on a channel at the given local
// instant: active, channel member, date window covers the day, week mask
// includes the weekday, and some time range covers the minute (a placement
// without an evaluable range runs all day). Highest priority wins; ties go
// to the lower id so the answer is stable.
func ActiveAt(placements []model.Placement, channelID int, at time.Time) (model.Placement, bool) {
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	minute := at.Hour()*60 + at.Minute()

	var best model.Placement
	found := false
	for _, p := range placements {
		if !p.Active {
			continue
		}
		member := false
		for _, id := range p.ChannelIDs {
			if id == channelID {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		if !WindowContains(p.Window, day) {
			continue
		}
		if !MaskIncludes(p.Days, at.Weekday()) {
			continue
		}

		covers := !hasEvaluableRange(p.TimeRanges)
		if !covers {
			for _, r := range p.TimeRanges {
				if rangeCovers(r, minute) {
					covers = true
					break
				}
			}
		}
		if !covers {
			continue
		}

		if !found || p.Priority > best.Priority || (p.Priority == best.Priority && p.ID < best.ID) {
			best = p
			found = true
		}
	}
	return best, found
}
