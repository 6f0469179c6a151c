package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage пишет файлы в каталог на диске; раздаются они по /uploads/.
type LocalStorage struct {
	dir       string
	publicURL string
}

// NewLocalStorage создаёт каталог dir при необходимости.
// publicBaseURL: адрес сервера, к которому добавляется "/uploads/<key>".
func NewLocalStorage(dir, publicBaseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, publicURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (s *LocalStorage) Save(ctx context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// ключ не должен выводить за пределы каталога
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}

	path := filepath.Join(s.dir, key)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return s.publicURL + "/uploads/" + key, nil
}
