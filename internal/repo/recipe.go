package repo

import (
	"RecipeBox/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// RecipeRepository: контракт доступа к рецептам и их дочерним таблицам.
// Все многострочные изменения выполняются в одной транзакции.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe, children model.RecipeChildren) (*model.Recipe, error)
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, patch model.RecipePatch) error
	Delete(ctx context.Context, id int64) error

	// Hydrate собирает рецепт целиком. Неизвестный id: gorm.ErrRecordNotFound.
	Hydrate(ctx context.Context, id int64) (*model.RecipeView, error)
	// HydrateAll собирает все рецепты (id по убыванию), по одному запросу на таблицу.
	HydrateAll(ctx context.Context) ([]model.RecipeView, error)
}

type recipeRepo struct {
	db *gorm.DB
}

// NewRecipeRepository создаёт gorm-реализацию RecipeRepository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(ctx context.Context, recipe *model.Recipe, children model.RecipeChildren) (*model.Recipe, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return insertChildren(tx, recipe.ID, children)
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *recipeRepo) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var rec model.Recipe
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *recipeRepo) Update(ctx context.Context, id int64, patch model.RecipePatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := map[string]any{"updated_at": time.Now().UTC()}
		if patch.Title != nil {
			fields["title"] = *patch.Title
		}
		if patch.Description != nil {
			fields["description"] = *patch.Description
		}
		res := tx.Model(&model.Recipe{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// каждая переданная коллекция заменяется целиком
		if patch.Ingredients != nil {
			if err := replaceRows(tx, &model.RecipeIngredient{}, id, ingredientRows(id, *patch.Ingredients)); err != nil {
				return err
			}
		}
		if patch.Steps != nil {
			if err := replaceRows(tx, &model.RecipeStep{}, id, stepRows(id, *patch.Steps)); err != nil {
				return err
			}
		}
		if patch.Stickers != nil {
			if err := replaceRows(tx, &model.RecipeSticker{}, id, stickerRows(id, *patch.Stickers)); err != nil {
				return err
			}
		}
		if patch.Images != nil {
			if err := replaceRows(tx, &model.RecipeImage{}, id, imageRows(id, *patch.Images)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// сначала дочерние строки, затем сам рецепт
		for _, m := range childModels() {
			if err := tx.Where("recipe_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&model.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepo) Hydrate(ctx context.Context, id int64) (*model.RecipeView, error) {
	db := r.db.WithContext(ctx)

	var rec model.Recipe
	if err := db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	views, err := r.hydrate(db, []model.Recipe{rec})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (r *recipeRepo) HydrateAll(ctx context.Context) ([]model.RecipeView, error) {
	db := r.db.WithContext(ctx)

	var recs []model.Recipe
	if err := db.Order("id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return r.hydrate(db, recs)
}

// hydrate дополняет строки рецептов владельцем и дочерними коллекциями.
// Порядок recs сохраняется.
func (r *recipeRepo) hydrate(db *gorm.DB, recs []model.Recipe) ([]model.RecipeView, error) {
	views := make([]model.RecipeView, 0, len(recs))
	if len(recs) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(recs))
	ownerIDs := make([]int64, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
		if rec.UserID != model.SharedOwnerID {
			ownerIDs = append(ownerIDs, rec.UserID)
		}
	}

	owners, err := usernamesByID(db, ownerIDs)
	if err != nil {
		return nil, err
	}

	var ingredients []model.RecipeIngredient
	if err := db.Where("recipe_id IN ?", ids).Order("id").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	var steps []model.RecipeStep
	if err := db.Where("recipe_id IN ?", ids).Order("id").Find(&steps).Error; err != nil {
		return nil, err
	}
	var stickers []model.RecipeSticker
	if err := db.Where("recipe_id IN ?", ids).Order("id").Find(&stickers).Error; err != nil {
		return nil, err
	}
	var images []model.RecipeImage
	if err := db.Where("recipe_id IN ?", ids).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.RecipeView, len(recs))
	for _, rec := range recs {
		owner := owners[rec.UserID]
		if rec.UserID == model.SharedOwnerID {
			owner = model.SharedOwnerLabel
		}
		views = append(views, model.RecipeView{
			ID:          rec.ID,
			UserID:      rec.UserID,
			Title:       rec.Title,
			Description: rec.Description,
			Owner:       owner,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
			Ingredients: []string{},
			Steps:       []string{},
			Stickers:    []string{},
			Images:      []string{},
		})
	}
	for i := range views {
		byID[views[i].ID] = &views[i]
	}

	for _, row := range ingredients {
		if v, ok := byID[row.RecipeID]; ok {
			v.Ingredients = append(v.Ingredients, row.Name)
		}
	}
	for _, row := range steps {
		if v, ok := byID[row.RecipeID]; ok {
			v.Steps = append(v.Steps, row.Content)
		}
	}
	for _, row := range stickers {
		if v, ok := byID[row.RecipeID]; ok {
			v.Stickers = append(v.Stickers, row.Sticker)
		}
	}
	for _, row := range images {
		if v, ok := byID[row.RecipeID]; ok {
			v.Images = append(v.Images, row.URL)
		}
	}
	return views, nil
}

func childModels() []any {
	return []any{
		&model.RecipeIngredient{},
		&model.RecipeStep{},
		&model.RecipeSticker{},
		&model.RecipeImage{},
	}
}

func insertChildren(tx *gorm.DB, recipeID int64, c model.RecipeChildren) error {
	if rows := ingredientRows(recipeID, c.Ingredients); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := stepRows(recipeID, c.Steps); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := stickerRows(recipeID, c.Stickers); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := imageRows(recipeID, c.Images); len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// replaceRows удаляет строки таблицы m для рецепта и вставляет rows (если они есть).
func replaceRows[T any](tx *gorm.DB, m any, recipeID int64, rows []T) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(m).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func ingredientRows(recipeID int64, names []string) []model.RecipeIngredient {
	rows := make([]model.RecipeIngredient, 0, len(names))
	for _, n := range names {
		rows = append(rows, model.RecipeIngredient{RecipeID: recipeID, Name: n})
	}
	return rows
}

func stepRows(recipeID int64, steps []string) []model.RecipeStep {
	rows := make([]model.RecipeStep, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, model.RecipeStep{RecipeID: recipeID, Content: s})
	}
	return rows
}

func stickerRows(recipeID int64, stickers []string) []model.RecipeSticker {
	rows := make([]model.RecipeSticker, 0, len(stickers))
	for _, s := range stickers {
		rows = append(rows, model.RecipeSticker{RecipeID: recipeID, Sticker: s})
	}
	return rows
}

func imageRows(recipeID int64, urls []string) []model.RecipeImage {
	rows := make([]model.RecipeImage, 0, len(urls))
	for _, u := range urls {
		rows = append(rows, model.RecipeImage{RecipeID: recipeID, URL: u})
	}
	return rows
}
