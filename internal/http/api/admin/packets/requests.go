package packets

import (
	"time"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

type CreateChannelRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
}

type UpdateChannelRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type CreateCreativeRequest struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required"`
	URL             string `json:"url" binding:"required,url"`
	DefaultDuration int    `json:"default_duration"`
}

type UpdateCreativeRequest struct {
	Name            *string `json:"name"`
	URL             *string `json:"url"`
	DefaultDuration *int    `json:"default_duration"`
}

type TimeRangePayload struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// PlacementPayload carries a full placement; every structural rule (required
// channels, creative, name, range shape) is left to the validator so the
// client gets the complete error list in one round trip, not gin's first
// binding failure.
type PlacementPayload struct {
	Name       string             `json:"name"`
	ChannelIDs []int              `json:"channel_ids"`
	Category   string             `json:"category"`
	CreativeID *int               `json:"creative_id"`
	StartDate  *string            `json:"start_date"` // "2006-01-02"
	EndDate    *string            `json:"end_date"`
	TimeRanges []TimeRangePayload `json:"time_ranges"`
	Days       model.WeekMask     `json:"days"`
	Active     *bool              `json:"active"`
	Priority   int                `json:"priority"`
}

const dateLayout = "2006-01-02"

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToModel converts the payload into an engine record. Unparseable dates are
// transport errors; everything else is the validator's business.
func (p PlacementPayload) ToModel() (model.Placement, error) {
	start, err := parseDate(p.StartDate)
	if err != nil {
		return model.Placement{}, err
	}
	end, err := parseDate(p.EndDate)
	if err != nil {
		return model.Placement{}, err
	}

	ranges := make([]model.TimeRange, 0, len(p.TimeRanges))
	for _, r := range p.TimeRanges {
		ranges = append(ranges, model.TimeRange{Start: r.Start, End: r.End})
	}

	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return model.Placement{
		Name:       p.Name,
		ChannelIDs: p.ChannelIDs,
		Category:   p.Category,
		CreativeID: p.CreativeID,
		Window:     model.DateWindow{Start: start, End: end},
		TimeRanges: ranges,
		Days:       p.Days,
		Active:     active,
		Priority:   p.Priority,
	}, nil
}
