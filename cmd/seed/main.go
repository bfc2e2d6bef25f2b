package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"crewsite/internal/bootstrap"
	"crewsite/internal/config"
	"crewsite/internal/database"
	"crewsite/internal/domain/admin"
	"crewsite/internal/domain/content"
	"crewsite/internal/pkg/logger"
	"crewsite/internal/pkg/password"
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

	log.Info().Msg("running migrations")
	if err := database.Migrate(db, append(admin.Models(), content.Models()...)...); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, err := bootstrap.EnsureAdmin(ctx, admin.NewRepository(db), password.NewHasher(cfg.BcryptCost), bootstrap.AdminSeed{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}

	// No notifier: nobody is subscribed to a one-shot process.
	report, err := bootstrap.SeedContent(ctx, content.NewModule(db, nil, cfg.ListLimit), time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("seed content failed")
	}

	log.Info().
		Bool("admin_created", created).
		Interface("content", report).
		Msg("seed completed")
}
