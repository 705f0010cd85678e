package service

import (
	"context"
	"errors"
	"time"

	"cork/internal/dto"
	"cork/internal/models"
	"cork/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrCellarEntryNotFound = errors.New("cellar entry not found")

type CellarService struct {
	cellarRepo *repository.CellarRepository
	logger     *zap.Logger
}

func NewCellarService(cellarRepo *repository.CellarRepository, logger *zap.Logger) *CellarService {
	return &CellarService{
		cellarRepo: cellarRepo,
		logger:     logger,
	}
}

func (s *CellarService) Add(ctx context.Context, userID uuid.UUID, req *dto.AddCellarEntryRequest) (*dto.CellarEntryResponse, error) {
	entry := &models.CellarEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       req.Name,
		Type:       req.Type,
		Region:     req.Region,
		Vintage:    req.Vintage,
		PriceRange: req.PriceRange,
		ABV:        req.ABV,
		Rating:     req.Rating,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
	}

	if err := s.cellarRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Wine added to cellar",
		zap.String("user_id", userID.String()),
		zap.String("name", entry.Name),
	)

	return toCellarResponse(entry), nil
}

func (s *CellarService) List(ctx context.Context, userID uuid.UUID) ([]*dto.CellarEntryResponse, error) {
	entries, err := s.cellarRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CellarEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toCellarResponse(entry))
	}

	return responses, nil
}

func (s *CellarService) Remove(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.cellarRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCellarEntryNotFound
	}
	return nil
}

func toCellarResponse(entry *models.CellarEntry) *dto.CellarEntryResponse {
	return &dto.CellarEntryResponse{
		ID:         entry.ID.String(),
		Name:       entry.Name,
		Type:       entry.Type,
		Region:     entry.Region,
		Vintage:    entry.Vintage,
		PriceRange: entry.PriceRange,
		ABV:        entry.ABV,
		Rating:     entry.Rating,
		Notes:      entry.Notes,
		CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
	}
}
