package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cork/internal/dto"
	"cork/internal/models"
	"cork/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LabelExtractor reads a wine-label photo into a structured record.
// *LLMService is the production implementation.
type LabelExtractor interface {
	ExtractWineFromImage(ctx context.Context, fileReader io.Reader, fileName string) (*dto.Wine, error)
}

type LabelService struct {
	extractor LabelExtractor
	labelRepo *repository.LabelRepository
	uploadDir string
	logger    *zap.Logger
}

func NewLabelService(extractor LabelExtractor, labelRepo *repository.LabelRepository, uploadDir string, logger *zap.Logger) *LabelService {
	return &LabelService{
		extractor: extractor,
		labelRepo: labelRepo,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// Scan stores the uploaded label photo, has the vision model read it and
// persists the result. Unlike recommendations there is no fallback tier:
// a provider failure surfaces to the caller.
func (s *LabelService) Scan(ctx context.Context, userID uuid.UUID, src io.Reader, fileName string) (*dto.LabelScanResponse, error) {
	if s.extractor == nil {
		return nil, fmt.Errorf("label scanning requires a configured AI provider")
	}

	id := uuid.New()
	storedName := id.String() + filepath.Ext(fileName)
	storedPath := filepath.Join(s.uploadDir, storedName)

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(dst, src)
	dst.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	file, err := os.Open(storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen file: %w", err)
	}
	defer file.Close()

	wine, err := s.extractor.ExtractWineFromImage(ctx, file, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read label: %w", err)
	}

	serialized, err := json.Marshal(wine)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize wine: %w", err)
	}

	now := time.Now()
	label := &models.Label{
		ID:        id,
		UserID:    userID,
		FileName:  fileName,
		FileSize:  size,
		FileURL:   "/uploads/" + storedName,
		Wine:      serialized,
		CreatedAt: now,
	}

	if err := s.labelRepo.Create(ctx, label); err != nil {
		return nil, fmt.Errorf("failed to save label: %w", err)
	}

	s.logger.Info("Label scanned",
		zap.String("user_id", userID.String()),
		zap.String("wine", wine.Name),
	)

	return &dto.LabelScanResponse{
		ID:        label.ID.String(),
		FileName:  label.FileName,
		FileSize:  label.FileSize,
		FileURL:   label.FileURL,
		Wine:      wine,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

// List returns the caller's previously scanned labels.
func (s *LabelService) List(ctx context.Context, userID uuid.UUID) ([]*dto.LabelScanResponse, error) {
	labels, err := s.labelRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LabelScanResponse, 0, len(labels))
	for _, label := range labels {
		var wine dto.Wine
		if err := json.Unmarshal(label.Wine, &wine); err != nil {
			s.logger.Warn("Skipping label with malformed wine record",
				zap.String("label_id", label.ID.String()),
				zap.Error(err),
			)
			continue
		}

		responses = append(responses, &dto.LabelScanResponse{
			ID:        label.ID.String(),
			FileName:  label.FileName,
			FileSize:  label.FileSize,
			FileURL:   label.FileURL,
			Wine:      &wine,
			CreatedAt: label.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}
