package service

import (
	"RecipeBox/internal/model"
	"fmt"
	"strings"
)

// Названия политик доступа (ACCESS_POLICY).
const (
	PolicyOwner = "owner"
	PolicyOpen  = "open"
)

// AccessPolicy решает, кто может создавать и менять рецепты.
type AccessPolicy interface {
	Name() string
	// IdentityRequired: нужен ли заголовок X-User на маршрутах рецептов.
	IdentityRequired() bool
	// OwnerFor возвращает владельца нового рецепта.
	OwnerFor(id *model.Identity) (int64, error)
	// CanModify проверяет право изменить или удалить рецепт.
	CanModify(id *model.Identity, recipe *model.Recipe) error
}

// OwnerPolicy: менять рецепт может только его автор.
type OwnerPolicy struct{}

func (OwnerPolicy) Name() string           { return PolicyOwner }
func (OwnerPolicy) IdentityRequired() bool { return true }

func (OwnerPolicy) OwnerFor(id *model.Identity) (int64, error) {
	if id == nil {
		return 0, newError(ErrUnauthenticated, "Missing X-User header")
	}
	return id.UserID, nil
}

func (OwnerPolicy) CanModify(id *model.Identity, recipe *model.Recipe) error {
	if id == nil {
		return newError(ErrUnauthenticated, "Missing X-User header")
	}
	if recipe.UserID != id.UserID {
		return newError(ErrForbidden, "not your recipe")
	}
	return nil
}

// OpenPolicy — общий семейный режим, любой может менять любой рецепт.
type OpenPolicy struct{}

func (OpenPolicy) Name() string           { return PolicyOpen }
func (OpenPolicy) IdentityRequired() bool { return false }

func (OpenPolicy) OwnerFor(id *model.Identity) (int64, error) {
	if id == nil {
		return model.SharedOwnerID, nil
	}
	return id.UserID, nil
}

func (OpenPolicy) CanModify(*model.Identity, *model.Recipe) error { return nil }

// NewAccessPolicy выбирает политику по имени. Пустое имя: owner.
func NewAccessPolicy(name string) (AccessPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyOwner:
		return OwnerPolicy{}, nil
	case PolicyOpen:
		return OpenPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown access policy %q", name)
	}
}
