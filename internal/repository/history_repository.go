package repository

import (
	"context"

	"cork/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// HistoryRepository stores recommendation history. Entries are append-only:
// nothing in this service updates or deletes them.
type HistoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHistoryRepository(db *pgxpool.Pool, logger *zap.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *models.HistoryEntry) error {
	query := squirrel.Insert("recommendation_history").
		Columns("id", "user_id", "query", "recommendations", "source", "created_at").
		Values(entry.ID, entry.UserID, entry.Query, entry.Recommendations, entry.Source, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.HistoryEntry, error) {
	query := squirrel.Select("id", "user_id", "query", "recommendations", "source", "created_at").
		From("recommendation_history").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
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

	var entries []*models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Query, &entry.Recommendations, &entry.Source, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
