package packets

import (
	"time"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	ID    int     `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// mirrors model.Channel but flattens times to RFC3339
type ChannelResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Location  *string `json:"location"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CreativeResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	DefaultDuration int    `json:"default_duration"`
	CreatedAt       string `json:"created_at"`
}

type PlacementResponse struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	ChannelIDs []int              `json:"channel_ids"`
	Category   string             `json:"category"`
	CreativeID *int               `json:"creative_id"`
	StartDate  *string            `json:"start_date"`
	EndDate    *string            `json:"end_date"`
	TimeRanges []TimeRangePayload `json:"time_ranges"`
	Days       model.WeekMask     `json:"days"`
	Active     bool               `json:"active"`
	Priority   int                `json:"priority"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

// CreatePlacementResponse pairs the stored record with the validation result
// so a client can warn about conflicts on an accepted placement.
type CreatePlacementResponse struct {
	Placement  PlacementResponse      `json:"placement"`
	Validation model.ValidationResult `json:"validation"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func ChannelResponseFrom(ch model.Channel) ChannelResponse {
	return ChannelResponse{
		ID:        ch.ID,
		Name:      ch.Name,
		Location:  ch.Location,
		CreatedAt: ch.CreatedAt.Format(time.RFC3339),
		UpdatedAt: ch.UpdatedAt.Format(time.RFC3339),
	}
}

func CreativeResponseFrom(c model.Creative) CreativeResponse {
	return CreativeResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            c.Type,
		URL:             c.URL,
		DefaultDuration: c.DefaultDuration,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

func PlacementResponseFrom(p model.Placement) PlacementResponse {
	ranges := make([]TimeRangePayload, 0, len(p.TimeRanges))
	for _, r := range p.TimeRanges {
		ranges = append(ranges, TimeRangePayload{Start: r.Start, End: r.End})
	}
	return PlacementResponse{
		ID:         p.ID,
		Name:       p.Name,
		ChannelIDs: p.ChannelIDs,
		Category:   p.Category,
		CreativeID: p.CreativeID,
		StartDate:  formatDate(p.Window.Start),
		EndDate:    formatDate(p.Window.End),
		TimeRanges: ranges,
		Days:       p.Days,
		Active:     p.Active,
		Priority:   p.Priority,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
