package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cork/internal/dto"
	"cork/internal/models"
	"cork/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockGenerator struct {
	wines []*dto.Wine
	err   error
	calls int
}

func (m *mockGenerator) GenerateWineRecommendations(ctx context.Context, query string) ([]*dto.Wine, error) {
	m.calls++
	return m.wines, m.err
}

type mockHistory struct {
	createErr error
	created   chan *models.HistoryEntry
	entries   []*models.HistoryEntry
	listErr   error
}

func (m *mockHistory) Create(ctx context.Context, entry *models.HistoryEntry) error {
	if m.created != nil {
		m.created <- entry
	}
	return m.createErr
}

func (m *mockHistory) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.HistoryEntry, error) {
	return m.entries, m.listErr
}

func testRecommendConfig() *config.RecommendConfig {
	return &config.RecommendConfig{
		Domain:       "Australian",
		Count:        3,
		Timeout:      time.Second,
		FallbackMode: "keyword",
	}
}

func newTestService(gen WineGenerator, store HistoryStore) *RecommendationService {
	cfg := testRecommendConfig()
	return NewRecommendationService(gen, NewFallbackCatalog(cfg), store, cfg, zap.NewNop())
}

func testWines(n int) []*dto.Wine {
	wines := make([]*dto.Wine, 0, n)
	for i := 0; i < n; i++ {
		wines = append(wines, &dto.Wine{
			Name:        "Test Wine",
			Type:        "Shiraz",
			Region:      "Barossa Valley",
			Description: "Test notes",
			PriceRange:  "$20-$30 AUD",
			ABV:         "14.0%",
			Rating:      "90/100",
		})
	}
	return wines
}

func TestRecommend_EmptyQueryRejected(t *testing.T) {
	gen := &mockGenerator{wines: testWines(3)}
	store := &mockHistory{created: make(chan *models.HistoryEntry, 1)}
	svc := newTestService(gen, store)

	userID := uuid.New()
	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.Recommend(context.Background(), query, &userID)
		require.ErrorIs(t, err, ErrEmptyQuery)
	}

	assert.Equal(t, 0, gen.calls, "provider must not be called for invalid input")
	select {
	case <-store.created:
		t.Fatal("store must not be called for invalid input")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRecommend_FallbackWhenNoGenerator(t *testing.T) {
	svc := newTestService(nil, &mockHistory{})

	result, err := svc.Recommend(context.Background(), "red wine", nil)
	require.NoError(t, err)

	assert.Equal(t, "fallback", result.Source)
	assert.Equal(t, "red wine", result.Query)
	require.Len(t, result.Recommendations, 3)

	var redVarietals int
	for _, wine := range result.Recommendations {
		if assert.NotEmpty(t, wine.Name) {
			switch {
			case wine.Type == "Shiraz", wine.Type == "Cabernet Shiraz", wine.Type == "Cabernet Sauvignon":
				redVarietals++
			}
		}
	}
	assert.Equal(t, 3, redVarietals, "red query should yield red varietals")

	// Same input twice yields identical fallback output
	again, err := svc.Recommend(context.Background(), "red wine", nil)
	require.NoError(t, err)
	assert.Equal(t, result.Recommendations, again.Recommendations)
}

func TestRecommend_KeywordRoutingDiffers(t *testing.T) {
	svc := newTestService(nil, &mockHistory{})

	red, err := svc.Recommend(context.Background(), "red wine", nil)
	require.NoError(t, err)
	white, err := svc.Recommend(context.Background(), "white wine", nil)
	require.NoError(t, err)

	assert.NotEqual(t, red.Recommendations, white.Recommendations)
}

func TestRecommend_FallbackOnGeneratorError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider timeout")}
	svc := newTestService(gen, &mockHistory{})

	result, err := svc.Recommend(context.Background(), "bold shiraz", nil)
	require.NoError(t, err, "provider failure must not fail the request")

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "fallback", result.Source)
	require.NotEmpty(t, result.Recommendations)
}

func TestRecommend_FallbackOnEmptyGeneratorResult(t *testing.T) {
	gen := &mockGenerator{wines: []*dto.Wine{}}
	svc := newTestService(gen, &mockHistory{})

	result, err := svc.Recommend(context.Background(), "bold shiraz", nil)
	require.NoError(t, err)

	assert.Equal(t, "fallback", result.Source)
	require.NotEmpty(t, result.Recommendations)
}

func TestRecommend_AISuccess(t *testing.T) {
	wines := testWines(4)
	gen := &mockGenerator{wines: wines}
	svc := newTestService(gen, &mockHistory{})

	result, err := svc.Recommend(context.Background(), "  bold shiraz  ", nil)
	require.NoError(t, err)

	assert.Equal(t, "ai", result.Source)
	assert.Equal(t, "bold shiraz", result.Query)
	require.Len(t, result.Recommendations, 3, "result is capped at the configured count")
	assert.Equal(t, wines[:3], result.Recommendations)
	assert.NotEmpty(t, result.Timestamp)
}

func TestRecommend_ZeroCountDoesNotTruncateAIResult(t *testing.T) {
	wines := testWines(3)
	gen := &mockGenerator{wines: wines}
	cfg := testRecommendConfig()
	cfg.Count = 0
	svc := NewRecommendationService(gen, NewFallbackCatalog(cfg), &mockHistory{}, cfg, zap.NewNop())

	result, err := svc.Recommend(context.Background(), "bold shiraz", nil)
	require.NoError(t, err)

	assert.Equal(t, "ai", result.Source)
	require.NotEmpty(t, result.Recommendations, "a misconfigured count must never empty the result")
	assert.Equal(t, wines, result.Recommendations)
}

func TestRecommend_HistoryRecorded(t *testing.T) {
	store := &mockHistory{created: make(chan *models.HistoryEntry, 1)}
	svc := newTestService(nil, store)

	userID := uuid.New()
	_, err := svc.Recommend(context.Background(), "red wine", &userID)
	require.NoError(t, err)

	select {
	case entry := <-store.created:
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, "red wine", entry.Query)
		assert.Equal(t, models.SourceFallback, entry.Source)

		var wines []*dto.Wine
		require.NoError(t, json.Unmarshal(entry.Recommendations, &wines))
		assert.Len(t, wines, 3)
	case <-time.After(time.Second):
		t.Fatal("history entry was not written")
	}
}

func TestRecommend_AnonymousSkipsHistory(t *testing.T) {
	store := &mockHistory{created: make(chan *models.HistoryEntry, 1)}
	svc := newTestService(nil, store)

	_, err := svc.Recommend(context.Background(), "red wine", nil)
	require.NoError(t, err)

	select {
	case <-store.created:
		t.Fatal("anonymous request must not write history")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRecommend_PersistenceFailureDoesNotAffectResponse(t *testing.T) {
	store := &mockHistory{
		createErr: errors.New("store unavailable"),
		created:   make(chan *models.HistoryEntry, 1),
	}
	svc := newTestService(nil, store)

	userID := uuid.New()
	result, err := svc.Recommend(context.Background(), "red wine", &userID)
	require.NoError(t, err)

	assert.Equal(t, "fallback", result.Source)
	require.Len(t, result.Recommendations, 3)

	// The failing write still happens, it just never surfaces
	select {
	case <-store.created:
	case <-time.After(time.Second):
		t.Fatal("history write was not attempted")
	}
}

func TestHistory_SkipsMalformedEntries(t *testing.T) {
	userID := uuid.New()
	good, err := json.Marshal(testWines(2))
	require.NoError(t, err)

	store := &mockHistory{entries: []*models.HistoryEntry{
		{
			ID:              uuid.New(),
			UserID:          userID,
			Query:           "red wine",
			Recommendations: good,
			Source:          models.SourceAI,
			CreatedAt:       time.Now(),
		},
		{
			ID:              uuid.New(),
			UserID:          userID,
			Query:           "broken",
			Recommendations: []byte("{not json"),
			Source:          models.SourceFallback,
			CreatedAt:       time.Now(),
		},
	}}
	svc := newTestService(nil, store)

	entries, err := svc.History(context.Background(), userID, 20)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "red wine", entries[0].Query)
	assert.Equal(t, "ai", entries[0].Source)
	assert.Len(t, entries[0].Recommendations, 2)
}
