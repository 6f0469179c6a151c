package handlers_test

import (
	"RecipeBox/internal/config"
	"RecipeBox/internal/handlers"
	"RecipeBox/internal/middleware"
	"RecipeBox/internal/repo"
	"RecipeBox/internal/service"
	"RecipeBox/internal/storage"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter собирает полный стек поверх in-memory SQLite и локального хранилища.
func newTestRouter(t *testing.T, policyName string) (http.Handler, *config.Config) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.CloseDB(db) })

	cfg := &config.Config{
		AccessPolicy:  policyName,
		UploadDir:     t.TempDir(),
		UploadMaxMB:   1,
		PublicBaseURL: "http://test.local",
		CORSOrigins:   []string{"*"},
	}
	logger := zap.NewNop().Sugar()

	policy, err := service.NewAccessPolicy(cfg.AccessPolicy)
	require.NoError(t, err)
	local, err := storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
	require.NoError(t, err)

	userSvc := service.NewUserService(repo.NewUserRepository(db), repo.NewFriendRepository(db), logger)
	recipeSvc := service.NewRecipeService(repo.NewRecipeRepository(db), policy, logger)
	imageSvc := service.NewImageService(local, logger)

	h := handlers.NewHandler(userSvc, recipeSvc, imageSvc, logger, cfg)
	return h.Router, cfg
}

// do выполняет запрос; user: значение X-User (пусто, без заголовка).
func do(t *testing.T, h http.Handler, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.HeaderUser, user)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

type errorBody struct {
	Error string `json:"error"`
}

type recipeBody struct {
	ID          int64    `json:"id"`
	UserID      int64    `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Owner       string   `json:"owner"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Stickers    []string `json:"stickers"`
	Images      []string `json:"images"`
}

func register(t *testing.T, h http.Handler, username string) {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/register", "", `{"username":"`+username+`"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func createRecipe(t *testing.T, h http.Handler, user, body string) recipeBody {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/recipes", user, body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[recipeBody](t, rr)
}
