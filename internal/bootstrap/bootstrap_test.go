package bootstrap

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"crewsite/internal/database"
	"crewsite/internal/domain/admin"
	"crewsite/internal/domain/content"
	"crewsite/internal/pkg/password"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectSilent(fmt.Sprintf("file:bootstrap_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db, append(admin.Models(), content.Models()...)...))
	return db
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	db := setupDB(t)
	repo := admin.NewRepository(db)
	hasher := password.NewHasher(bcrypt.MinCost)
	ctx := context.Background()

	created, err := EnsureAdmin(ctx, repo, hasher, AdminSeed{Username: "admin", Email: " Crew@Example.com", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdmin(ctx, repo, hasher, AdminSeed{Username: "other", Email: "x@example.com", Password: "different"})
	require.NoError(t, err)
	assert.False(t, created)

	acct, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", acct.Username)
	assert.Equal(t, "crew@example.com", acct.Email)
	assert.True(t, hasher.Verify("admin123", acct.PasswordHash))
}

func TestSeedContent_Idempotent(t *testing.T) {
	db := setupDB(t)
	m := content.NewModule(db, nil, 1000)
	ctx := context.Background()
	now := time.Now()

	report, err := SeedContent(ctx, m, now)
	require.NoError(t, err)
	assert.Equal(t, SeedReport{SiteContent: true, Events: true, Team: true, Gallery: true, Videos: true}, report)

	report, err = SeedContent(ctx, m, now)
	require.NoError(t, err)
	assert.Equal(t, SeedReport{}, report)

	events, err := m.Events.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "event-1", events[0].ID)

	site, err := m.Site.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, site.Features, 3)

	team, err := m.Team.List(ctx)
	require.NoError(t, err)
	assert.Len(t, team, 2)
}

func TestSeedContent_SkipsNonEmptyCollections(t *testing.T) {
	db := setupDB(t)
	m := content.NewModule(db, nil, 1000)
	ctx := context.Background()

	_, err := m.Videos.Create(ctx, content.CreateVideoRequest{Title: "Mine", VideoURL: "/v.mp4"})
	require.NoError(t, err)

	report, err := SeedContent(ctx, m, time.Now())
	require.NoError(t, err)
	assert.False(t, report.Videos)
	assert.True(t, report.Events)

	videos, err := m.Videos.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "Mine", videos[0].Title)
}
