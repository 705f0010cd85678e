package service

import (
	"context"
	"errors"

	"cork/internal/dto"
	"cork/internal/models"
	"cork/internal/repository"

	"go.uber.org/zap"
)

var ErrInvalidStyle = errors.New("invalid wine style")

type CatalogService struct {
	catalogRepo *repository.CatalogRepository
	logger      *zap.Logger
}

func NewCatalogService(catalogRepo *repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List returns curated wines, optionally filtered by style.
func (s *CatalogService) List(ctx context.Context, style string) ([]*dto.Wine, error) {
	var wineStyle models.WineStyle
	switch style {
	case "":
		wineStyle = ""
	case string(models.StyleRed), string(models.StyleWhite), string(models.StyleSparkling), string(models.StyleRose):
		wineStyle = models.WineStyle(style)
	default:
		return nil, ErrInvalidStyle
	}

	wines, err := s.catalogRepo.ListByStyle(ctx, wineStyle)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.Wine, 0, len(wines))
	for _, wine := range wines {
		responses = append(responses, &dto.Wine{
			Name:        wine.Name,
			Type:        wine.Type,
			Region:      wine.Region,
			Vintage:     wine.Vintage,
			Description: wine.Description,
			PriceRange:  wine.PriceRange,
			ABV:         wine.ABV,
			Rating:      wine.Rating,
		})
	}

	return responses, nil
}
