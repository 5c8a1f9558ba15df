package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/storage"
)

// InitStorage selects and returns the configured creative storage backend
func InitStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("cdn", env.SpacesCDNURL).Msg("using DigitalOcean Spaces storage")
		return spacesStorage
	}

	local := storage.NewLocalStorage("./creatives")
	log.Info().Msg("using local creative storage in ./creatives")
	return local
}
