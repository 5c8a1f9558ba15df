package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

// placementRow is the flat placements table shape; channel bindings and time
// ranges live in join tables and are assembled separately.
type placementRow struct {
	ID         int        `db:"id"`
	Name       string     `db:"name"`
	Category   string     `db:"category"`
	CreativeID *int       `db:"creative_id"`
	StartDate  *time.Time `db:"start_date"`
	EndDate    *time.Time `db:"end_date"`
	Monday     bool       `db:"monday"`
	Tuesday    bool       `db:"tuesday"`
	Wednesday  bool       `db:"wednesday"`
	Thursday   bool       `db:"thursday"`
	Friday     bool       `db:"friday"`
	Saturday   bool       `db:"saturday"`
	Sunday     bool       `db:"sunday"`
	Active     bool       `db:"active"`
	Priority   int        `db:"priority"`
	CreatedBy  int        `db:"created_by"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

type timeRangeRow struct {
	PlacementID int     `db:"placement_id"`
	Position    int     `db:"position"`
	StartTime   *string `db:"start_time"`
	EndTime     *string `db:"end_time"`
}

func (r placementRow) toModel() model.Placement {
	return model.Placement{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		CreativeID: r.CreativeID,
		Window:     model.DateWindow{Start: r.StartDate, End: r.EndDate},
		Days: model.WeekMask{
			Monday:    r.Monday,
			Tuesday:   r.Tuesday,
			Wednesday: r.Wednesday,
			Thursday:  r.Thursday,
			Friday:    r.Friday,
			Saturday:  r.Saturday,
			Sunday:    r.Sunday,
		},
		Active:    r.Active,
		Priority:  r.Priority,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

const placementColumns = `
	id, name, category, creative_id, start_date, end_date,
	monday, tuesday, wednesday, thursday, friday, saturday, sunday,
	active, priority, created_by, created_at, updated_at`

func (s *pgStore) CreatePlacement(p model.Placement) (model.Placement, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return model.Placement{}, err
	}
	defer tx.Rollback()

	var row placementRow
	const q = `
	INSERT INTO placements
	  (name, category, creative_id, start_date, end_date,
	   monday, tuesday, wednesday, thursday, friday, saturday, sunday,
	   active, priority, created_by, created_at, updated_at)
	VALUES
	  ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,now(),now())
	RETURNING` + placementColumns + `;`
	err = tx.Get(&row, q,
		p.Name, p.Category, p.CreativeID, p.Window.Start, p.Window.End,
		p.Days.Monday, p.Days.Tuesday, p.Days.Wednesday, p.Days.Thursday,
		p.Days.Friday, p.Days.Saturday, p.Days.Sunday,
		p.Active, p.Priority, p.CreatedBy)
	if err != nil {
		log.Error().Err(err).Msg("CreatePlacement failed")
		return model.Placement{}, err
	}

	if err := replacePlacementJoins(tx, row.ID, p); err != nil {
		return model.Placement{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Placement{}, err
	}

	out := row.toModel()
	out.ChannelIDs = append([]int(nil), p.ChannelIDs...)
	out.TimeRanges = append([]model.TimeRange(nil), p.TimeRanges...)
	return out, nil
}

// full-record replacement: the row is updated and both join tables are
// rewritten, matching how the engine treats mutation.
func (s *pgStore) UpdatePlacement(p model.Placement) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
	UPDATE placements
	SET name = $2, category = $3, creative_id = $4,
	    start_date = $5, end_date = $6,
	    monday = $7, tuesday = $8, wednesday = $9, thursday = $10,
	    friday = $11, saturday = $12, sunday = $13,
	    active = $14, priority = $15, updated_at = now()
	WHERE id = $1;`,
		p.ID, p.Name, p.Category, p.CreativeID, p.Window.Start, p.Window.End,
		p.Days.Monday, p.Days.Tuesday, p.Days.Wednesday, p.Days.Thursday,
		p.Days.Friday, p.Days.Saturday, p.Days.Sunday,
		p.Active, p.Priority)
	if err != nil {
		log.Error().Err(err).Int("placement_id", p.ID).Msg("UpdatePlacement failed")
		return err
	}

	if _, err := tx.Exec(`DELETE FROM placement_channels WHERE placement_id = $1;`, p.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM placement_time_ranges WHERE placement_id = $1;`, p.ID); err != nil {
		return err
	}
	if err := replacePlacementJoins(tx, p.ID, p); err != nil {
		return err
	}
	return tx.Commit()
}

func replacePlacementJoins(tx *sqlx.Tx, placementID int, p model.Placement) error {
	for _, channelID := range p.ChannelIDs {
		_, err := tx.Exec(`
		INSERT INTO placement_channels (placement_id, channel_id)
		VALUES ($1,$2)
		ON CONFLICT DO NOTHING;`, placementID, channelID)
		if err != nil {
			log.Error().Err(err).Int("placement_id", placementID).Int("channel_id", channelID).Msg("bind channel failed")
			return err
		}
	}
	for i, r := range p.TimeRanges {
		_, err := tx.Exec(`
		INSERT INTO placement_time_ranges (placement_id, position, start_time, end_time)
		VALUES ($1,$2,$3,$4);`, placementID, i, r.Start, r.End)
		if err != nil {
			log.Error().Err(err).Int("placement_id", placementID).Msg("insert time range failed")
			return err
		}
	}
	return nil
}

func (s *pgStore) GetPlacementByID(id int) (model.Placement, error) {
	var row placementRow
	if err := s.db.Get(&row, `SELECT`+placementColumns+` FROM placements WHERE id = $1;`, id); err != nil {
		log.Error().Err(err).Int("placement_id", id).Msg("GetPlacementByID failed")
		return model.Placement{}, err
	}
	placements, err := s.attachJoins([]placementRow{row})
	if err != nil {
		return model.Placement{}, err
	}
	return placements[0], nil
}

func (s *pgStore) ListPlacements() ([]model.Placement, error) {
	var rows []placementRow
	if err := s.db.Select(&rows, `SELECT`+placementColumns+` FROM placements ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListPlacements failed")
		return nil, err
	}
	return s.attachJoins(rows)
}

// LoadActivePlacements assembles the records the conflict engine is warmed
// up with at boot.
func (s *pgStore) LoadActivePlacements() ([]model.Placement, error) {
	var rows []placementRow
	if err := s.db.Select(&rows, `SELECT`+placementColumns+` FROM placements WHERE active = true ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("LoadActivePlacements failed")
		return nil, err
	}
	return s.attachJoins(rows)
}

func (s *pgStore) DeletePlacement(id int) error {
	_, err := s.db.Exec(`DELETE FROM placements WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("placement_id", id).Msg("DeletePlacement failed")
	}
	return err
}

func (s *pgStore) SetPlacementActive(id int, active bool) error {
	_, err := s.db.Exec(`
		UPDATE placements SET active = $2, updated_at = now() WHERE id = $1;`, id, active)
	if err != nil {
		log.Error().Err(err).Int("placement_id", id).Bool("active", active).Msg("SetPlacementActive failed")
	}
	return err
}

func (s *pgStore) attachJoins(rows []placementRow) ([]model.Placement, error) {
	out := make([]model.Placement, 0, len(rows))
	for _, row := range rows {
		p := row.toModel()

		if err := s.db.Select(&p.ChannelIDs, `
			SELECT channel_id FROM placement_channels
			WHERE placement_id = $1 ORDER BY channel_id;`, row.ID); err != nil {
			log.Error().Err(err).Int("placement_id", row.ID).Msg("load placement channels failed")
			return nil, err
		}

		var ranges []timeRangeRow
		if err := s.db.Select(&ranges, `
			SELECT placement_id, position, start_time, end_time
			FROM placement_time_ranges
			WHERE placement_id = $1 ORDER BY position;`, row.ID); err != nil {
			log.Error().Err(err).Int("placement_id", row.ID).Msg("load placement time ranges failed")
			return nil, err
		}
		for _, r := range ranges {
			p.TimeRanges = append(p.TimeRanges, model.TimeRange{Start: r.StartTime, End: r.EndTime})
		}

		out = append(out, p)
	}
	return out, nil
}
