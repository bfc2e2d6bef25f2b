package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddr        = ":8000"
	defaultDatabaseURL     = "crewsite.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTIssuer       = "crewsite"
	defaultJWTAccessTTL    = "24h"
	defaultResetTokenTTL   = "1h"
	defaultResetURLBase    = "http://localhost:3000/admin/reset-password"
	defaultAdminUsername   = "admin"
	defaultAdminEmail      = "admin@example.com"
	defaultAdminPassword   = "admin123"
	defaultListLimit       = "1000"
	defaultCORSOrigins     = "*"
	defaultSMTPPort        = "587"
	defaultMailTimeout     = "15s"
	defaultAuthRateLimit   = "10"
	defaultAuthRateWindow  = "1m"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = "10s"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string

	JWTSecret     string
	JWTIssuer     string
	JWTAccessTTL  time.Duration
	ResetTokenTTL time.Duration
	ResetURLBase  string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
	BcryptCost    int

	ListLimit          int
	CORSAllowedOrigins []string

	SMTP        SMTPConfig
	MailTimeout time.Duration

	AuthRateLimit  int
	AuthRateWindow time.Duration

	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether real email delivery is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

// Load reads the environment. Call godotenv.Load beforehand to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.JWTIssuer = strings.TrimSpace(getEnv("JWT_ISSUER", defaultJWTIssuer))
	cfg.ResetURLBase = strings.TrimSpace(getEnv("RESET_URL_BASE", defaultResetURLBase))

	cfg.AdminUsername = strings.TrimSpace(getEnv("ADMIN_USERNAME", defaultAdminUsername))
	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", defaultAdminEmail)))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", defaultAdminPassword)

	var err error
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.ResetTokenTTL, err = parseDurationEnv("RESET_TOKEN_TTL", defaultResetTokenTTL); err != nil {
		return nil, err
	}
	if cfg.MailTimeout, err = parseDurationEnv("MAIL_TIMEOUT", defaultMailTimeout); err != nil {
		return nil, err
	}
	if cfg.AuthRateWindow, err = parseDurationEnv("AUTH_RATE_WINDOW", defaultAuthRateWindow); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return nil, err
	}

	if cfg.BcryptCost, err = parseIntEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)); err != nil {
		return nil, err
	}
	if cfg.ListLimit, err = parseIntEnv("LIST_LIMIT", defaultListLimit); err != nil {
		return nil, err
	}
	if cfg.AuthRateLimit, err = parseIntEnv("AUTH_RATE_LIMIT", defaultAuthRateLimit); err != nil {
		return nil, err
	}

	cfg.CORSAllowedOrigins = parseListEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)

	cfg.SMTP.Host = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if cfg.SMTP.Port, err = parseIntEnv("SMTP_PORT", defaultSMTPPort); err != nil {
		return nil, err
	}
	cfg.SMTP.Username = strings.TrimSpace(getEnv("SMTP_USERNAME", os.Getenv("SMTP_EMAIL")))
	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD")
	cfg.SMTP.From = strings.TrimSpace(getEnv("SMTP_FROM", cfg.SMTP.Username))

	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))
	logFormat := "console"
	if isProdLike(cfg.AppEnv) {
		logFormat = "json"
	}
	cfg.LogFormat = strings.TrimSpace(getEnv("LOG_FORMAT", logFormat))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be > 0")
	}
	if cfg.MailTimeout <= 0 {
		return fmt.Errorf("MAIL_TIMEOUT must be > 0")
	}
	if cfg.ListLimit <= 0 {
		return fmt.Errorf("LIST_LIMIT must be > 0")
	}
	if cfg.AuthRateLimit <= 0 || cfg.AuthRateWindow <= 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT and AUTH_RATE_WINDOW must be > 0")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME must not be empty")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if len(cfg.JWTSecret) < 32 {
			return fmt.Errorf("in prod/release JWT_SECRET must be at least 32 characters")
		}
		if isEmptyOrDefault(cfg.AdminPassword, defaultAdminPassword) {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must be set and not default")
		}
		if isEmptyOrDefault(cfg.AdminEmail, defaultAdminEmail) {
			return fmt.Errorf("in prod/release ADMIN_EMAIL must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseListEnv(name, fallback string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(name, fallback), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
