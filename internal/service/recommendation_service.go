package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"cork/internal/dto"
	"cork/internal/models"
	"cork/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyQuery = errors.New("query is required")

const historyWriteTimeout = 5 * time.Second

// WineGenerator produces wines for a preference query. *LLMService is the
// production implementation; nil means the AI tier is disabled.
type WineGenerator interface {
	GenerateWineRecommendations(ctx context.Context, query string) ([]*dto.Wine, error)
}

// HistoryStore persists recommendation history entries.
type HistoryStore interface {
	Create(ctx context.Context, entry *models.HistoryEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.HistoryEntry, error)
}

// RecommendationService turns a free-text preference query into a non-empty
// wine list. The AI tier is used when configured and healthy; every other
// path lands on the curated fallback, so a well-formed request never fails.
type RecommendationService struct {
	generator WineGenerator
	fallback  *FallbackCatalog
	history   HistoryStore
	config    *config.RecommendConfig
	logger    *zap.Logger
}

func NewRecommendationService(
	generator WineGenerator,
	fallback *FallbackCatalog,
	history HistoryStore,
	cfg *config.RecommendConfig,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		generator: generator,
		fallback:  fallback,
		history:   history,
		config:    cfg,
		logger:    logger,
	}
}

// Recommend validates the query, produces a wine list and records the
// interaction. userID is nil for anonymous callers; they get recommendations
// but no history entry. The returned list is never empty.
func (s *RecommendationService) Recommend(ctx context.Context, query string, userID *uuid.UUID) (*dto.RecommendationResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, ErrEmptyQuery
	}

	wines, source := s.generate(ctx, trimmed)

	now := time.Now().UTC()

	if userID != nil {
		s.recordHistory(*userID, trimmed, wines, source, now)
	}

	return &dto.RecommendationResult{
		Recommendations: wines,
		Query:           trimmed,
		Timestamp:       now.Format(time.RFC3339),
		Source:          string(source),
	}, nil
}

// generate runs the two-tier pipeline: bounded provider call first, curated
// fallback on any provider trouble. Provider errors are never fatal.
func (s *RecommendationService) generate(ctx context.Context, query string) ([]*dto.Wine, models.RecommendationSource) {
	if s.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()

		wines, err := s.generator.GenerateWineRecommendations(genCtx, query)
		switch {
		case err != nil:
			s.logger.Warn("AI provider failed, using fallback", zap.String("query", query), zap.Error(err))
		case len(wines) == 0:
			s.logger.Warn("AI provider returned no wines, using fallback", zap.String("query", query))
		default:
			if s.config.Count > 0 && len(wines) > s.config.Count {
				wines = wines[:s.config.Count]
			}
			return wines, models.SourceAI
		}
	}

	return s.fallback.Select(query), models.SourceFallback
}

// recordHistory writes the history entry without blocking the response.
// The write runs on its own background context so a slow or down store
// cannot delay or fail the request; errors are logged and swallowed.
func (s *RecommendationService) recordHistory(userID uuid.UUID, query string, wines []*dto.Wine, source models.RecommendationSource, now time.Time) {
	serialized, err := json.Marshal(wines)
	if err != nil {
		s.logger.Warn("Failed to serialize recommendations for history", zap.Error(err))
		return
	}

	entry := &models.HistoryEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Query:           query,
		Recommendations: serialized,
		Source:          source,
		CreatedAt:       now,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()

		if err := s.history.Create(ctx, entry); err != nil {
			s.logger.Warn("Failed to persist recommendation history",
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
		}
	}()
}

// History returns the caller's recent recommendation requests, newest first.
func (s *RecommendationService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*dto.HistoryEntryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	entries, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		var wines []*dto.Wine
		if err := json.Unmarshal(entry.Recommendations, &wines); err != nil {
			s.logger.Warn("Skipping history entry with malformed recommendations",
				zap.String("entry_id", entry.ID.String()),
				zap.Error(err),
			)
			continue
		}

		responses = append(responses, &dto.HistoryEntryResponse{
			ID:              entry.ID.String(),
			Query:           entry.Query,
			Recommendations: wines,
			Source:          string(entry.Source),
			CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}
