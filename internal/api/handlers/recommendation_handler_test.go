package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cork/internal/api/handlers"
	"cork/internal/dto"
	"cork/internal/models"
	"cork/internal/service"
	"cork/pkg/auth"
	"cork/pkg/config"
	"cork/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubHistory struct {
	created chan *models.HistoryEntry
}

func (s *stubHistory) Create(ctx context.Context, entry *models.HistoryEntry) error {
	if s.created != nil {
		s.created <- entry
	}
	return nil
}

func (s *stubHistory) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.HistoryEntry, error) {
	return nil, nil
}

// newTestApp wires the recommendation routes the way the router does, with
// the AI tier disabled so responses come from the curated fallback.
func newTestApp(t *testing.T, authRequired bool, store service.HistoryStore) (*fiber.App, *auth.JWTManager) {
	t.Helper()

	logger := zap.NewNop()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, time.Hour)
	cfg := &config.RecommendConfig{
		Domain:       "Australian",
		Count:        3,
		Timeout:      time.Second,
		FallbackMode: "keyword",
		AuthRequired: authRequired,
	}

	recSvc := service.NewRecommendationService(nil, service.NewFallbackCatalog(cfg), store, cfg, logger)
	h := handlers.NewRecommendationHandler(recSvc, logger)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	recAuth := middleware.OptionalAuthMiddleware(jwtManager, logger)
	if authRequired {
		recAuth = middleware.AuthMiddleware(jwtManager, logger)
	}
	app.Post("/api/v1/recommendations", recAuth, h.Recommend)
	app.Get("/api/v1/recommendations/history", middleware.AuthMiddleware(jwtManager, logger), h.History)

	return app, jwtManager
}

func postRecommendations(t *testing.T, app *fiber.App, body string, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func TestRecommendEndpoint_FallbackResponse(t *testing.T) {
	app, _ := newTestApp(t, false, &stubHistory{})

	resp := postRecommendations(t, app, `{"query": "red wine"}`, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.RecommendationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "fallback", result.Source)
	assert.Equal(t, "red wine", result.Query)
	assert.NotEmpty(t, result.Timestamp)
	require.Len(t, result.Recommendations, 3)
	for _, wine := range result.Recommendations {
		assert.NotEmpty(t, wine.Name)
		assert.NotEmpty(t, wine.Type)
	}
}

func TestRecommendEndpoint_EmptyQuery(t *testing.T) {
	app, _ := newTestApp(t, false, &stubHistory{})

	for _, body := range []string{`{"query": ""}`, `{"query": "   "}`, `{}`} {
		resp := postRecommendations(t, app, body, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)

		payload, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.Contains(t, string(payload), "required")
	}
}

func TestRecommendEndpoint_MethodNotAllowed(t *testing.T) {
	app, _ := newTestApp(t, false, &stubHistory{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRecommendEndpoint_Preflight(t *testing.T) {
	app, _ := newTestApp(t, false, &stubHistory{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "https://cork.example")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Less(t, resp.StatusCode, http.StatusBadRequest)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRecommendEndpoint_AuthRequired(t *testing.T) {
	app, jwtManager := newTestApp(t, true, &stubHistory{})

	resp := postRecommendations(t, app, `{"query": "red wine"}`, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := jwtManager.GenerateToken(uuid.New().String(), "tester", "tester@cork.wine")
	require.NoError(t, err)

	resp = postRecommendations(t, app, `{"query": "red wine"}`, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRecommendEndpoint_AuthenticatedRequestRecordsHistory(t *testing.T) {
	store := &stubHistory{created: make(chan *models.HistoryEntry, 1)}
	app, jwtManager := newTestApp(t, false, store)

	userID := uuid.New()
	token, err := jwtManager.GenerateToken(userID.String(), "tester", "tester@cork.wine")
	require.NoError(t, err)

	resp := postRecommendations(t, app, `{"query": "sparkling for a party"}`, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case entry := <-store.created:
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, "sparkling for a party", entry.Query)
	case <-time.After(time.Second):
		t.Fatal("history entry was not written")
	}
}

func TestRecommendEndpoint_AnonymousAllowedWithOptionalAuth(t *testing.T) {
	store := &stubHistory{created: make(chan *models.HistoryEntry, 1)}
	app, _ := newTestApp(t, false, store)

	resp := postRecommendations(t, app, `{"query": "white wine"}`, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case <-store.created:
		t.Fatal("anonymous request must not write history")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHistoryEndpoint_Unauthorized(t *testing.T) {
	app, _ := newTestApp(t, false, &stubHistory{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/history", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
