package packets

// CurrentPlacementResponse is what a channel player polls for: the placement
// on air right now and the creative it should render.
type CurrentPlacementResponse struct {
	ChannelID   int    `json:"channel_id"`
	PlacementID int    `json:"placement_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Priority    int    `json:"priority"`
	CreativeID  *int   `json:"creative_id"`
	CreativeURL string `json:"creative_url,omitempty"`
	Type        string `json:"type,omitempty"`
	Duration    int    `json:"duration,omitempty"`
}
