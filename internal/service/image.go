package service

import (
	"RecipeBox/internal/storage"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ImageService принимает загруженные изображения и отдаёт их URL.
type ImageService struct {
	store  storage.ImageStorage
	logger *zap.SugaredLogger
}

// UploadResult: ответ /api/upload.
type UploadResult struct {
	URL string `json:"url"`
}

func NewImageService(store storage.ImageStorage, logger *zap.SugaredLogger) *ImageService {
	return &ImageService{store: store, logger: logger}
}

// Upload сохраняет файл. Пустой файл и не-изображения отклоняются с ErrValidation.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*UploadResult, error) {
	if size == 0 {
		return nil, newError(ErrValidation, "empty file")
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, newError(ErrValidation, "only images are allowed")
	}

	key := storage.NewKey(filename, contentType)
	url, err := s.store.Save(ctx, key, contentType, body, size)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	s.logger.Infow("image uploaded", "key", key, "size", size)
	return &UploadResult{URL: url}, nil
}
