package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

func (s *pgStore) CreateChannel(name string, location *string, createdBy int) (model.Channel, error) {
	var ch model.Channel
	const q = `
	INSERT INTO channels (name, location, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id, name, location, created_by, created_at, updated_at;`
	if err := s.db.Get(&ch, q, name, location, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateChannel failed")
		return model.Channel{}, err
	}
	return ch, nil
}

func (s *pgStore) GetChannelByID(id int) (model.Channel, error) {
	var ch model.Channel
	err := s.db.Get(&ch, `
		SELECT id, name, location, created_by, created_at, updated_at
		FROM channels
		WHERE id = $1
		`, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("channel_id", id).Msg("GetChannelByID failed")
	}
	return ch, err
}

func (s *pgStore) ListChannels() ([]model.Channel, error) {
	var channels []model.Channel
	err := s.db.Select(&channels, `
		SELECT id, name, location, created_by, created_at, updated_at
		FROM channels
		ORDER BY id
		`)
	if err != nil {
		log.Error().Err(err).Msg("ListChannels failed")
		return nil, err
	}
	return channels, nil
}

func (s *pgStore) UpdateChannel(id int, name *string, location *string) error {
	_, err := s.db.Exec(`
		UPDATE channels
		SET name = COALESCE($2, name),
		    location = COALESCE($3, location),
		    updated_at = now()
		WHERE id = $1;`, id, name, location)
	if err != nil {
		log.Error().Err(err).Int("channel_id", id).Msg("UpdateChannel failed")
	}
	return err
}

func (s *pgStore) DeleteChannel(id int) error {
	_, err := s.db.Exec(`DELETE FROM channels WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("channel_id", id).Msg("DeleteChannel failed")
	}
	return err
}
