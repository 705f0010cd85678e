package repository

import (
	"context"

	"cork/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LabelRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLabelRepository(db *pgxpool.Pool, logger *zap.Logger) *LabelRepository {
	return &LabelRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LabelRepository) Create(ctx context.Context, label *models.Label) error {
	query := squirrel.Insert("labels").
		Columns("id", "user_id", "file_name", "file_size", "file_url", "wine", "created_at").
		Values(label.ID, label.UserID, label.FileName, label.FileSize, label.FileURL, label.Wine, label.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *LabelRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Label, error) {
	query := squirrel.Select("id", "user_id", "file_name", "file_size", "file_url", "wine", "created_at").
		From("labels").
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

	var labels []*models.Label
	for rows.Next() {
		var label models.Label
		if err := rows.Scan(
			&label.ID, &label.UserID, &label.FileName, &label.FileSize, &label.FileURL, &label.Wine, &label.CreatedAt,
		); err != nil {
			return nil, err
		}
		labels = append(labels, &label)
	}

	return labels, nil
}
