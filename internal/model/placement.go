package model

import "time"

// TimeRange is a daily wall-clock window. Endpoints are "HH:MM" 24-hour
// strings; a nil endpoint means "not set". Start > End denotes an overnight
// range that wraps past midnight.
type TimeRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// WeekMask selects the weekdays a placement runs on. All seven false means
// the placement runs every day.
type WeekMask struct {
	Monday    bool `db:"monday" json:"monday"`
	Tuesday   bool `db:"tuesday" json:"tuesday"`
	Wednesday bool `db:"wednesday" json:"wednesday"`
	Thursday  bool `db:"thursday" json:"thursday"`
	Friday    bool `db:"friday" json:"friday"`
	Saturday  bool `db:"saturday" json:"saturday"`
	Sunday    bool `db:"sunday" json:"sunday"`
}

// DateWindow bounds the calendar dates (inclusive) a placement is eligible
// at all. A nil bound is open-ended on that side.
type DateWindow struct {
	Start *time.Time `json:"start_date"`
	End   *time.Time `json:"end_date"`
}

// Placement binds a creative to one or more channels under date, weekday and
// time-of-day constraints. Two placements conflict only when they share a
// channel and a category and overlap on all three axes.
type Placement struct {
	ID         int         `db:"id" json:"id"`
	Name       string      `db:"name" json:"name"`
	ChannelIDs []int       `json:"channel_ids"`
	Category   string      `db:"category" json:"category"`
	CreativeID *int        `db:"creative_id" json:"creative_id"`
	Window     DateWindow  `json:"window"`
	TimeRanges []TimeRange `json:"time_ranges"`
	Days       WeekMask    `json:"days"`
	Active     bool        `db:"active" json:"active"`
	Priority   int         `db:"priority" json:"priority"`
	CreatedBy  int         `db:"created_by" json:"created_by"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}

// Conflict reports an overlap between a candidate placement and an active
// peer. OverlapStart/OverlapEnd carry the peer's own range bounds as "HH:MM",
// or the sentinel "All Day" when either side has no evaluable time range.
type Conflict struct {
	PeerID       int    `json:"peer_id"`
	PeerLabel    string `json:"peer_label"`
	OverlapStart string `json:"overlap_start"`
	OverlapEnd   string `json:"overlap_end"`
}

// ValidationResult is the outcome of validating a candidate placement.
// Errors are structural input problems; Conflicts are advisory and do not by
// themselves make the candidate invalid.
type ValidationResult struct {
	IsValid   bool       `json:"is_valid"`
	Errors    []string   `json:"errors"`
	Conflicts []Conflict `json:"conflicts"`
}
