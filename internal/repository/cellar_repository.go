package repository

import (
	"context"

	"cork/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CellarRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCellarRepository(db *pgxpool.Pool, logger *zap.Logger) *CellarRepository {
	return &CellarRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CellarRepository) Create(ctx context.Context, entry *models.CellarEntry) error {
	query := squirrel.Insert("cellar_entries").
		Columns("id", "user_id", "name", "type", "region", "vintage", "price_range", "abv", "rating", "notes", "created_at").
		Values(entry.ID, entry.UserID, entry.Name, entry.Type, entry.Region, entry.Vintage, entry.PriceRange, entry.ABV, entry.Rating, entry.Notes, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CellarRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.CellarEntry, error) {
	query := squirrel.Select("id", "user_id", "name", "type", "region", "vintage", "price_range", "abv", "rating", "notes", "created_at").
		From("cellar_entries").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.CellarEntry
	for rows.Next() {
		var entry models.CellarEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Name, &entry.Type, &entry.Region, &entry.Vintage,
			&entry.PriceRange, &entry.ABV, &entry.Rating, &entry.Notes, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

// Delete removes an entry owned by the given user. Returns the number of
// rows affected so the caller can distinguish "not found" from success.
func (r *CellarRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("cellar_entries").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
