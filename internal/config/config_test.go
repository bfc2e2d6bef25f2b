package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "ENV", "HTTP_ADDR", "DATABASE_URL", "JWT_SECRET", "JWT_ISSUER",
		"JWT_ACCESS_TTL", "RESET_TOKEN_TTL", "RESET_URL_BASE", "ADMIN_USERNAME",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "BCRYPT_COST", "LIST_LIMIT",
		"CORS_ALLOWED_ORIGINS", "SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME",
		"SMTP_EMAIL", "SMTP_PASSWORD", "SMTP_FROM", "MAIL_TIMEOUT",
		"AUTH_RATE_LIMIT", "AUTH_RATE_WINDOW", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "crewsite.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, 1000, cfg.ListLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.MailTimeout)
	assert.Equal(t, 10, cfg.AuthRateLimit)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.SMTP.Enabled())
	assert.False(t, cfg.IsProdLike())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("JWT_ACCESS_TTL", "2h")
	t.Setenv("ADMIN_EMAIL", "  Crew@Example.COM ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_EMAIL", "crew@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, "crew@example.com", cfg.AdminEmail)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, "crew@example.com", cfg.SMTP.Username)
	assert.Equal(t, "crew@example.com", cfg.SMTP.From)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"JWT_ACCESS_TTL":  "forever",
		"RESET_TOKEN_TTL": "-1h",
		"LIST_LIMIT":      "0",
		"BCRYPT_COST":     "99",
		"SMTP_PORT":       "smtp",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoad_ProdRefusesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", strings.Repeat("s", 40))
	_, err = Load()
	assert.ErrorContains(t, err, "ADMIN_PASSWORD")

	t.Setenv("ADMIN_PASSWORD", "a-long-real-password")
	_, err = Load()
	assert.ErrorContains(t, err, "ADMIN_EMAIL")

	t.Setenv("ADMIN_EMAIL", "crew@example.com")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_ProdRejectsShortSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "release")
	t.Setenv("JWT_SECRET", "short-but-not-default")

	_, err := Load()
	assert.ErrorContains(t, err, "at least 32")
}
