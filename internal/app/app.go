// Package app assembles the HTTP server from configuration and a database handle.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"crewsite/internal/bootstrap"
	"crewsite/internal/config"
	"crewsite/internal/domain/admin"
	"crewsite/internal/domain/content"
	"crewsite/internal/middleware"
	"crewsite/internal/pkg/jwt"
	"crewsite/internal/pkg/mailer"
	"crewsite/internal/pkg/password"
	"crewsite/internal/realtime"
)

const healthMessage = "Breakdance Crew API is running"

type App struct {
	cfg *config.Config
	db  *gorm.DB

	Hub     *realtime.Hub
	Admins  *admin.Repository
	Hasher  *password.Hasher
	Tokens  *jwt.Service
	Admin   *admin.Service
	Content *content.Module
	Limiter *middleware.RateLimiter
	Router  *gin.Engine
}

// NewMailer picks SMTP delivery when a host is configured. Without SMTP, dev
// environments log messages; prod-like ones fail every send so reset links
// never reach the logs.
func NewMailer(cfg *config.Config) mailer.Mailer {
	if cfg.SMTP.Enabled() {
		return mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}
	if cfg.IsProdLike() {
		log.Warn().Msg("SMTP_HOST not set; password reset emails will not be delivered")
		return mailer.NewDevConsoleMailer(false)
	}
	return mailer.NewDevConsoleMailer(true)
}

func New(cfg *config.Config, db *gorm.DB, m mailer.Mailer) *App {
	a := &App{
		cfg:    cfg,
		db:     db,
		Hub:    realtime.NewHub(),
		Admins: admin.NewRepository(db),
		Hasher: password.NewHasher(cfg.BcryptCost),
		Tokens: jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL).WithIssuer(cfg.JWTIssuer),
	}
	a.Admin = admin.NewService(a.Admins, a.Hasher, a.Tokens, m, admin.ResetConfig{
		TokenTTL:    cfg.ResetTokenTTL,
		URLBase:     cfg.ResetURLBase,
		MailTimeout: cfg.MailTimeout,
	})
	a.Content = content.NewModule(db, a.Hub, cfg.ListLimit)
	a.Limiter = middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
	a.Router = a.routes()
	return a
}

func (a *App) routes() *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.Metrics(),
		middleware.CORS(a.cfg.CORSAllowedOrigins),
	)

	auth := middleware.AdminJWTAuth(a.Tokens)

	api := r.Group("/api")
	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": healthMessage})
	})
	admin.NewHandler(a.Admin).RegisterRoutes(api, auth, a.Limiter.Middleware())
	a.Content.RegisterRoutes(api, auth)

	r.GET("/ws", realtime.ServeWS(a.Hub, realtime.NewUpgrader(a.cfg.CORSAllowedOrigins)))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// Bootstrap creates the admin account and sample content when missing.
func (a *App) Bootstrap(ctx context.Context) error {
	if _, err := bootstrap.EnsureAdmin(ctx, a.Admins, a.Hasher, bootstrap.AdminSeed{
		Username: a.cfg.AdminUsername,
		Email:    a.cfg.AdminEmail,
		Password: a.cfg.AdminPassword,
	}); err != nil {
		return err
	}
	_, err := bootstrap.SeedContent(ctx, a.Content, time.Now())
	return err
}

// Run starts background maintenance and returns when ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.Limiter.Run(10*time.Minute, ctx.Done())
}

// Shutdown disconnects live-update subscribers and waits for pending
// reset emails.
func (a *App) Shutdown(ctx context.Context) error {
	a.Hub.Close()
	return a.Admin.WaitForMail(ctx)
}
