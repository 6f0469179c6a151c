// Package storage хранит загруженные изображения рецептов: на локальном диске или в S3.
package storage

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStorage сохраняет файл под ключом key и возвращает публичный URL.
type ImageStorage interface {
	Save(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// imageExt: расширения для распространённых типов изображений.
var imageExt = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// NewKey генерирует уникальный ключ объекта. Расширение соответствует contentType:
// расширение исходного файла сохраняется, только если оно означает тот же тип.
func NewKey(filename, contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext != "" && mediaTypeOf(ext) == mediaType && mediaType != "" {
		return uuid.NewString() + ext
	}
	if known, ok := imageExt[mediaType]; ok {
		return uuid.NewString() + known
	}
	if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
		return uuid.NewString() + exts[0]
	}
	return uuid.NewString()
}

func mediaTypeOf(ext string) string {
	t, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
	if err != nil {
		return ""
	}
	return t
}
