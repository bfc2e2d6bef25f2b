package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"crewsite/internal/config"
	"crewsite/internal/database"
	"crewsite/internal/domain/admin"
	"crewsite/internal/domain/content"
	"crewsite/internal/pkg/mailer"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:             "test",
		JWTSecret:          "test-secret-test-secret-test-secret",
		JWTIssuer:          "crewsite",
		JWTAccessTTL:       time.Hour,
		ResetTokenTTL:      time.Hour,
		ResetURLBase:       "http://localhost:3000/admin/reset-password",
		AdminUsername:      "admin",
		AdminEmail:         "crew@example.com",
		AdminPassword:      "admin123",
		BcryptCost:         bcrypt.MinCost,
		ListLimit:          1000,
		CORSAllowedOrigins: []string{"*"},
		MailTimeout:        time.Second,
		AuthRateLimit:      100,
		AuthRateWindow:     time.Minute,
	}
}

func setupApp(t *testing.T, cfg *config.Config) (*App, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.ConnectSilent(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db, append(admin.Models(), content.Models()...)...))

	a := New(cfg, db, mailer.NewDevConsoleMailer(false))
	require.NoError(t, a.Bootstrap(context.Background()))

	srv := httptest.NewServer(a.Router)
	t.Cleanup(func() {
		srv.Close()
		_ = a.Shutdown(context.Background())
	})
	return a, srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/admin/login", "", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "bearer", out.TokenType)
	return out.AccessToken
}

func TestHealth(t *testing.T) {
	_, srv := setupApp(t, testConfig())

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Breakdance Crew API is running"}`, string(data))
}

func TestBootstrap_SeedsContent(t *testing.T) {
	_, srv := setupApp(t, testConfig())

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/events", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var events []content.Event
	require.NoError(t, json.Unmarshal(data, &events))
	assert.Len(t, events, 3)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/site-content", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMutationBroadcastsToLiveSubscribers(t *testing.T) {
	a, srv := setupApp(t, testConfig())
	token := login(t, srv)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return a.Hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/team", token, gin.H{
		"name":     "B-Girl Nova",
		"role":     "Danseuse",
		"imageUrl": "/images/team/nova.jpeg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var created content.TeamMember
	require.NoError(t, json.Unmarshal(data, &created))
	assert.NotEmpty(t, created.ID)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"team","action":"refresh"}`, string(msg))

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/team", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var team []content.TeamMember
	require.NoError(t, json.Unmarshal(data, &team))
	require.Len(t, team, 3)
	assert.Equal(t, created.ID, team[0].ID)
}

func TestMutationsRequireToken(t *testing.T) {
	_, srv := setupApp(t, testConfig())

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/events", "", gin.H{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/videos/video-1", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/videos", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginIsRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimit = 2
	cfg.AuthRateWindow = time.Hour
	_, srv := setupApp(t, cfg)

	body := gin.H{"username": "admin", "password": "wrong-password"}
	for i := 0; i < 2; i++ {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/admin/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/admin/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	_, srv := setupApp(t, testConfig())

	doJSON(t, http.MethodGet, srv.URL+"/api/events", "", nil)
	resp, data := doJSON(t, http.MethodGet, srv.URL+"/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "crewsite_http_requests_total")
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestNewMailer_ProdWithoutSMTPNeverLogsBody(t *testing.T) {
	logs := captureLogs(t)

	m := NewMailer(&config.Config{AppEnv: "production"})
	err := m.Send(context.Background(), "admin@crew.example", "reset", "link http://x/reset?token=LIVE-RESET-TOKEN")

	assert.ErrorIs(t, err, mailer.ErrDeliveryDisabled)
	assert.NotContains(t, logs.String(), "LIVE-RESET-TOKEN")
}

func TestNewMailer_DevWithoutSMTPLogsBody(t *testing.T) {
	logs := captureLogs(t)

	m := NewMailer(&config.Config{AppEnv: "dev"})
	require.NoError(t, m.Send(context.Background(), "admin@crew.example", "reset", "link http://x/reset?token=DEV-TOKEN"))

	assert.Contains(t, logs.String(), "DEV-TOKEN")
}

func TestNewMailer_SMTPWhenConfigured(t *testing.T) {
	m := NewMailer(&config.Config{AppEnv: "production", SMTP: config.SMTPConfig{Host: "smtp.example.com", Username: "crew@example.com"}})
	assert.IsType(t, &mailer.SMTPMailer{}, m)
}
