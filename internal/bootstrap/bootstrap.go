// Package bootstrap creates the admin account and sample content on first start.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"crewsite/internal/domain/admin"
	"crewsite/internal/domain/content"
	"crewsite/internal/pkg/password"
	"crewsite/internal/pkg/utils"
)

const defaultAdminPassword = "admin123"

type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// EnsureAdmin creates the singleton admin account if it does not exist.
// An existing account is never modified.
func EnsureAdmin(ctx context.Context, repo *admin.Repository, hasher *password.Hasher, seed AdminSeed) (bool, error) {
	if _, err := repo.Get(ctx); err == nil {
		return false, nil
	} else if !errors.Is(err, admin.ErrAdminNotFound) {
		return false, fmt.Errorf("load admin: %w", err)
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if err := repo.Create(ctx, &admin.AdminAccount{
		Username:     seed.Username,
		Email:        utils.NormalizeEmail(seed.Email),
		PasswordHash: hash,
	}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	if seed.Password == defaultAdminPassword {
		log.Warn().Str("username", seed.Username).Msg("admin account created with the default password; change it")
	} else {
		log.Info().Str("username", seed.Username).Msg("admin account created")
	}
	return true, nil
}

// SeedReport lists which collections received sample data.
type SeedReport struct {
	SiteContent bool
	Events      bool
	Team        bool
	Gallery     bool
	Videos      bool
}

// SeedContent fills each empty collection with sample data. Collections that
// already hold records are left alone, so repeated runs are no-ops.
func SeedContent(ctx context.Context, m *content.Module, now time.Time) (SeedReport, error) {
	var (
		report SeedReport
		err    error
	)
	now = now.UTC()

	if report.SiteContent, err = m.Site.Seed(ctx, defaultSiteContent(now)); err != nil {
		return report, fmt.Errorf("seed site content: %w", err)
	}
	if report.Events, err = m.Events.Seed(ctx, defaultEvents(now)); err != nil {
		return report, fmt.Errorf("seed events: %w", err)
	}
	if report.Team, err = m.Team.Seed(ctx, defaultTeam(now)); err != nil {
		return report, fmt.Errorf("seed team: %w", err)
	}
	if report.Gallery, err = m.Gallery.Seed(ctx, defaultGallery(now)); err != nil {
		return report, fmt.Errorf("seed gallery: %w", err)
	}
	if report.Videos, err = m.Videos.Seed(ctx, defaultVideos(now)); err != nil {
		return report, fmt.Errorf("seed videos: %w", err)
	}

	log.Info().
		Bool("site_content", report.SiteContent).
		Bool("events", report.Events).
		Bool("team", report.Team).
		Bool("gallery", report.Gallery).
		Bool("videos", report.Videos).
		Msg("sample content checked")
	return report, nil
}
