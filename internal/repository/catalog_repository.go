package repository

import (
	"context"

	"cork/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CatalogRepository holds the curated wine list served by the browse
// endpoint. Rows are written by cmd/seed from the compiled-in datasets.
type CatalogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCatalogRepository(db *pgxpool.Pool, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CatalogRepository) CreateBatch(ctx context.Context, wines []*models.CuratedWine) error {
	if len(wines) == 0 {
		return nil
	}

	builder := squirrel.Insert("curated_wines").
		Columns("id", "style", "name", "type", "region", "vintage", "description", "price_range", "abv", "rating", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, wine := range wines {
		builder = builder.Values(wine.ID, wine.Style, wine.Name, wine.Type, wine.Region, wine.Vintage,
			wine.Description, wine.PriceRange, wine.ABV, wine.Rating, wine.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CatalogRepository) ListByStyle(ctx context.Context, style models.WineStyle) ([]*models.CuratedWine, error) {
	builder := squirrel.Select("id", "style", "name", "type", "region", "vintage", "description", "price_range", "abv", "rating", "created_at").
		From("curated_wines").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if style != "" {
		builder = builder.Where(squirrel.Eq{"style": style})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wines []*models.CuratedWine
	for rows.Next() {
		var wine models.CuratedWine
		if err := rows.Scan(
			&wine.ID, &wine.Style, &wine.Name, &wine.Type, &wine.Region, &wine.Vintage,
			&wine.Description, &wine.PriceRange, &wine.ABV, &wine.Rating, &wine.CreatedAt,
		); err != nil {
			return nil, err
		}
		wines = append(wines, &wine)
	}

	return wines, nil
}

// DeleteAll clears the catalog before a reseed.
func (r *CatalogRepository) DeleteAll(ctx context.Context) error {
	sql, args, err := squirrel.Delete("curated_wines").PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
