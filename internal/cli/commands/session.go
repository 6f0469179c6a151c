package commands

import (
	"errors"

	"RecipeBox/internal/cli/api"
	fsrepo "RecipeBox/internal/cli/repo/fs"
	"RecipeBox/internal/cli/service"
	"RecipeBox/internal/config"
)

func userStore(cfg *config.Config) fsrepo.UserFSStore {
	return fsrepo.UserFSStore{Path: cfg.UserFile}
}

func authService(cfg *config.Config) service.AuthService {
	return service.NewAuthService(cfg.ServerURL, userStore(cfg))
}

// client: клиент от имени текущего пользователя. Без сохранённого имени запросы идут анонимно
// (сервер в режиме open это допускает).
func client(cfg *config.Config) (*api.Client, error) {
	login, err := userStore(cfg).LoadLogin()
	if err != nil && !errors.Is(err, fsrepo.ErrNoLogin) {
		return nil, err
	}
	return api.NewClient(cfg.ServerURL, login), nil
}

// requireClient: клиент, для которого имя пользователя обязательно.
func requireClient(cfg *config.Config) (*api.Client, error) {
	login, err := userStore(cfg).LoadLogin()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.ServerURL, login), nil
}
