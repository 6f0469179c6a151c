package handlers

import (
	"RecipeBox/internal/config"
	"RecipeBox/internal/middleware"
	"RecipeBox/internal/model"
	"RecipeBox/internal/service"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RecipeHandler: CRUD и поиск рецептов.
type RecipeHandler struct {
	Service *service.RecipeService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewRecipeHandler(recipeService *service.RecipeService, logger *zap.SugaredLogger, cfg *config.Config) *RecipeHandler {
	return &RecipeHandler{Service: recipeService, Logger: logger, Config: cfg}
}

// recipeRequest: тело POST/PUT. Коллекции читаются как сырой JSON:
// поле учитывается, только если это массив.
type recipeRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Ingredients json.RawMessage `json:"ingredients"`
	Steps       json.RawMessage `json:"steps"`
	Stickers    json.RawMessage `json:"stickers"`
	Images      json.RawMessage `json:"images"`
}

var errBadList = errors.New("list must contain strings")

// parseList возвращает nil, если поле отсутствует или не массив.
func parseList(raw json.RawMessage) (*[]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errBadList
	}
	if out == nil {
		out = []string{}
	}
	return &out, nil
}

func (req recipeRequest) patch() (model.RecipePatch, error) {
	p := model.RecipePatch{Title: req.Title, Description: req.Description}
	var err error
	if p.Ingredients, err = parseList(req.Ingredients); err != nil {
		return p, err
	}
	if p.Steps, err = parseList(req.Steps); err != nil {
		return p, err
	}
	if p.Stickers, err = parseList(req.Stickers); err != nil {
		return p, err
	}
	if p.Images, err = parseList(req.Images); err != nil {
		return p, err
	}
	return p, nil
}

func (req recipeRequest) input() (service.RecipeInput, error) {
	p, err := req.patch()
	if err != nil {
		return service.RecipeInput{}, err
	}
	in := service.RecipeInput{}
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Ingredients != nil {
		in.Ingredients = *p.Ingredients
	}
	if p.Steps != nil {
		in.Steps = *p.Steps
	}
	if p.Stickers != nil {
		in.Stickers = *p.Stickers
	}
	if p.Images != nil {
		in.Images = *p.Images
	}
	return in, nil
}

// recipeID разбирает {id}; нечисловой id: такого рецепта нет.
func recipeID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Search список рецептов с фильтрами q, stickers, include, exclude
func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ParseSearchFilter(q.Get("q"), q.Get("stickers"), q.Get("include"), q.Get("exclude"))

	list, err := h.Service.Search(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.Logger, "Search", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get один рецепт
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	view, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "Get", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Create новый рецепт
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	view, err := h.Service.Create(r.Context(), identity, in)
	if err != nil {
		writeServiceError(w, h.Logger, "Create", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Update частичное обновление рецепта
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req recipeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	patch, err := req.patch()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	view, err := h.Service.Update(r.Context(), identity, id, patch)
	if err != nil {
		writeServiceError(w, h.Logger, "Update", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete удаление рецепта
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())
	if err := h.Service.Delete(r.Context(), identity, id); err != nil {
		writeServiceError(w, h.Logger, "Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
