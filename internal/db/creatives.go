package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

func (s *pgStore) CreateCreative(name, ctype, url string, defaultDuration, createdBy int) (model.Creative, error) {
	var c model.Creative
	const q = `
	INSERT INTO creatives (name, type, url, default_duration, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id, name, type, url, default_duration, created_by, created_at, updated_at;`
	if err := s.db.Get(&c, q, name, ctype, url, defaultDuration, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateCreative failed")
		return model.Creative{}, err
	}
	return c, nil
}

func (s *pgStore) GetCreativeByID(id int) (model.Creative, error) {
	var c model.Creative
	err := s.db.Get(&c, `
		SELECT id, name, type, url, default_duration, created_by, created_at, updated_at
		FROM creatives
		WHERE id = $1
		`, id)
	if err != nil {
		log.Error().Err(err).Int("creative_id", id).Msg("GetCreativeByID failed")
	}
	return c, err
}

func (s *pgStore) ListCreatives() ([]model.Creative, error) {
	var creatives []model.Creative
	err := s.db.Select(&creatives, `
		SELECT id, name, type, url, default_duration, created_by, created_at, updated_at
		FROM creatives
		ORDER BY id
		`)
	if err != nil {
		log.Error().Err(err).Msg("ListCreatives failed")
		return nil, err
	}
	return creatives, nil
}

func (s *pgStore) UpdateCreative(id int, name, url *string, defaultDuration *int) error {
	_, err := s.db.Exec(`
		UPDATE creatives
		SET name = COALESCE($2, name),
		    url = COALESCE($3, url),
		    default_duration = COALESCE($4, default_duration),
		    updated_at = now()
		WHERE id = $1;`, id, name, url, defaultDuration)
	if err != nil {
		log.Error().Err(err).Int("creative_id", id).Msg("UpdateCreative failed")
	}
	return err
}

func (s *pgStore) DeleteCreative(id int) error {
	_, err := s.db.Exec(`DELETE FROM creatives WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("creative_id", id).Msg("DeleteCreative failed")
	}
	return err
}
