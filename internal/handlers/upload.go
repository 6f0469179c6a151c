package handlers

import (
	"RecipeBox/internal/config"
	"RecipeBox/internal/service"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

// UploadHandler принимает изображения рецептов.
type UploadHandler struct {
	Service *service.ImageService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewUploadHandler(imageService *service.ImageService, logger *zap.SugaredLogger, cfg *config.Config) *UploadHandler {
	return &UploadHandler{Service: imageService, Logger: logger, Config: cfg}
}

// поля формы, в которых ищем файл
var uploadFields = []string{"image", "file"}

// Upload загрузка одного файла (multipart/form-data)
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Лимит общего тела запроса: файл + запас на заголовки формы
	maxBody := h.Config.UploadMaxBytes() + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}

	file, header, err := formFile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if header.Size > h.Config.UploadMaxBytes() {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	contentType, err := detectContentType(file)
	if err != nil {
		h.Logger.Warnw("Upload: failed to read file", "error", err)
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	res, err := h.Service.Upload(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		writeServiceError(w, h.Logger, "Upload", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	for _, field := range uploadFields {
		f, fh, err := r.FormFile(field)
		if err == nil {
			return f, fh, nil
		}
	}
	return nil, nil, http.ErrMissingFile
}

// detectContentType определяет тип по первым байтам файла. Заголовок части от клиента не учитывается.
func detectContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
