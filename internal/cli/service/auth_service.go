package service

import (
	"context"
	"strings"

	"RecipeBox/internal/cli/api"
	"RecipeBox/internal/cli/repo"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Register регистрирует пользователя и делает его текущим.
	Register(ctx context.Context, username string) (*User, error)

	// Login входит под именем (сервер создаёт неизвестного пользователя).
	Login(ctx context.Context, username string) (*User, error)

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает имя текущего пользователя, если оно установлено.
	CurrentUser() (string, error)
}

// User: ответ /api/register и /api/login.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type authService struct {
	baseURL string
	store   repo.UserContextStore
}

// NewAuthService создаёт AuthService поверх HTTP API и локального хранилища имени.
func NewAuthService(baseURL string, store repo.UserContextStore) AuthService {
	return &authService{baseURL: baseURL, store: store}
}

func (s *authService) Register(ctx context.Context, username string) (*User, error) {
	return s.enter(ctx, "/api/register", username)
}

func (s *authService) Login(ctx context.Context, username string) (*User, error) {
	return s.enter(ctx, "/api/login", username)
}

func (s *authService) enter(ctx context.Context, path, username string) (*User, error) {
	var u User
	c := api.NewClient(s.baseURL, "")
	if err := c.Post(ctx, path, map[string]string{"username": strings.TrimSpace(username)}, &u); err != nil {
		return nil, err
	}
	if err := s.store.SaveLogin(u.Username); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *authService) Logout() error {
	return s.store.Clear()
}

func (s *authService) CurrentUser() (string, error) {
	return s.store.LoadLogin()
}
