package main

import (
	"os"

	"github.com/rs/zerolog"

	"focusboard/internal/config"
	"focusboard/internal/db"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	log.Info().Msg("migrations applied successfully")
}
