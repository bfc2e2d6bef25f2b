package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"crewsite/internal/config"
	"crewsite/internal/database"
	"crewsite/internal/domain/admin"
	"crewsite/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleared, err := admin.NewRepository(db).ClearExpiredResets(ctx, time.Now().UTC())
	if err != nil {
		log.Fatal().Err(err).Msg("cleanup reset tokens failed")
	}

	log.Info().Int64("reset_tokens", cleared).Msg("auth cleanup completed")
}
