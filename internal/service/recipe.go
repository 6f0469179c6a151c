package service

import (
	"RecipeBox/internal/model"
	"RecipeBox/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeInput: данные для создания рецепта.
type RecipeInput struct {
	Title       string
	Description string
	Ingredients []string
	Steps       []string
	Stickers    []string
	Images      []string
}

// RecipeService: CRUD и поиск рецептов с проверкой прав через AccessPolicy.
type RecipeService struct {
	recipes repo.RecipeRepository
	policy  AccessPolicy
	logger  *zap.SugaredLogger
}

func NewRecipeService(recipes repo.RecipeRepository, policy AccessPolicy, logger *zap.SugaredLogger) *RecipeService {
	return &RecipeService{recipes: recipes, policy: policy, logger: logger}
}

// Policy возвращает действующую политику доступа.
func (s *RecipeService) Policy() AccessPolicy { return s.policy }

// Create сохраняет рецепт со всеми дочерними строками и возвращает его гидратированным.
func (s *RecipeService) Create(ctx context.Context, id *model.Identity, in RecipeInput) (*model.RecipeView, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, newError(ErrValidation, "title required")
	}
	ownerID, err := s.policy.OwnerFor(id)
	if err != nil {
		return nil, err
	}

	rec := &model.Recipe{UserID: ownerID, Title: in.Title, Description: in.Description}
	children := model.RecipeChildren{
		Ingredients: trimAll(in.Ingredients),
		Steps:       in.Steps,
		Stickers:    in.Stickers,
		Images:      in.Images,
	}
	if _, err := s.recipes.Create(ctx, rec, children); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	s.logger.Infow("recipe created", "id", rec.ID, "owner", ownerID)

	return s.hydrate(ctx, rec.ID)
}

// Get возвращает один рецепт.
func (s *RecipeService) Get(ctx context.Context, recipeID int64) (*model.RecipeView, error) {
	ok, err := s.recipes.Exists(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("check recipe: %w", err)
	}
	if !ok {
		return nil, newError(ErrNotFound, "not found")
	}
	return s.hydrate(ctx, recipeID)
}

// Update применяет частичное обновление. Сначала проверяется существование (404), затем права (403).
func (s *RecipeService) Update(ctx context.Context, id *model.Identity, recipeID int64, patch model.RecipePatch) (*model.RecipeView, error) {
	if _, err := s.authorize(ctx, id, recipeID); err != nil {
		return nil, err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, newError(ErrValidation, "title required")
	}
	if patch.Ingredients != nil {
		trimmed := trimAll(*patch.Ingredients)
		patch.Ingredients = &trimmed
	}

	if err := s.recipes.Update(ctx, recipeID, patch); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, "not found")
		}
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	s.logger.Infow("recipe updated", "id", recipeID)

	return s.hydrate(ctx, recipeID)
}

// Delete удаляет рецепт вместе с дочерними строками.
func (s *RecipeService) Delete(ctx context.Context, id *model.Identity, recipeID int64) error {
	if _, err := s.authorize(ctx, id, recipeID); err != nil {
		return err
	}
	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newError(ErrNotFound, "not found")
		}
		return fmt.Errorf("delete recipe: %w", err)
	}
	s.logger.Infow("recipe deleted", "id", recipeID)
	return nil
}

// Search возвращает рецепты, подходящие под фильтр, новые первыми.
func (s *RecipeService) Search(ctx context.Context, f SearchFilter) ([]model.RecipeView, error) {
	all, err := s.recipes.HydrateAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("hydrate recipes: %w", err)
	}
	if f.IsEmpty() {
		return all, nil
	}

	out := make([]model.RecipeView, 0, len(all))
	for i := range all {
		if f.Match(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *RecipeService) authorize(ctx context.Context, id *model.Identity, recipeID int64) (*model.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(ErrNotFound, "not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if err := s.policy.CanModify(id, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecipeService) hydrate(ctx context.Context, recipeID int64) (*model.RecipeView, error) {
	v, err := s.recipes.Hydrate(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(ErrNotFound, "not found")
	}
	if err != nil {
		return nil, fmt.Errorf("hydrate recipe: %w", err)
	}
	return v, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
