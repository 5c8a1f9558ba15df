package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/notify"
	redisclient "github.com/Lumen-Tech-LLC/lumen/internal/redis"
	"github.com/Lumen-Tech-LLC/lumen/internal/schedule"
)

func main() {
	env := LoadEnvironment()

	if env.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	store := db.NewStore(nil)

	if env.RedisAddress != "" {
		redisclient.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	// broker is optional; a nil publisher just drops events
	var publisher *notify.Publisher
	if env.MQTTBrokerURL != "" {
		p, err := notify.NewPublisher(env.MQTTBrokerURL, "lumen-server")
		if err != nil {
			log.Error().Err(err).Msg("MQTT unavailable, placement events disabled")
		} else {
			publisher = p
		}
	}

	// warm the conflict index with every active placement; the write path
	// keeps it in sync from here on
	index := schedule.NewStore()
	active, err := store.LoadActivePlacements()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load active placements")
	}
	for _, p := range active {
		index.Upsert(p)
	}
	log.Info().Int("placements", index.Len()).Msg("conflict index warmed up")

	storageSystem := InitStorage(env)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	RegisterRoutes(r, env, store, index, storageSystem, publisher)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
