package model

import "time"

// SharedOwnerID: владелец рецептов, созданных без идентификации (политика open).
const SharedOwnerID int64 = 0

// SharedOwnerLabel: подпись владельца для SharedOwnerID.
const SharedOwnerLabel = "shared"

// Recipe: серверная модель рецепта. Дочерние строки хранятся в отдельных таблицах.
type Recipe struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"` // ссылка на users.id, без FK
	Title       string `gorm:"not null"`
	Description string `gorm:"not null;default:''"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// RecipeIngredient: строка ингредиента. Порядок не гарантирован.
type RecipeIngredient struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID int64  `gorm:"not null;index"`
	Name     string `gorm:"not null"`
}

// RecipeStep: шаг приготовления.
type RecipeStep struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID int64  `gorm:"not null;index"`
	Content  string `gorm:"not null"`
}

// RecipeSticker: диетический тег. Словарь не проверяется на сервере.
type RecipeSticker struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID int64  `gorm:"not null;index"`
	Sticker  string `gorm:"not null"`
}

// RecipeImage: ссылка на загруженное изображение.
type RecipeImage struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID int64  `gorm:"not null;index"`
	URL      string `gorm:"not null"`
}

// RecipeChildren: дочерние коллекции рецепта в виде строк.
type RecipeChildren struct {
	Ingredients []string
	Steps       []string
	Stickers    []string
	Images      []string
}

// RecipeView — «гидратированный» рецепт: строка рецепта, владелец и все дочерние коллекции.
type RecipeView struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Stickers    []string  `json:"stickers"`
	Images      []string  `json:"images"`
}

// Models перечисляет все таблицы для AutoMigrate.
func Models() []any {
	return []any{
		&User{},
		&Friend{},
		&Recipe{},
		&RecipeIngredient{},
		&RecipeStep{},
		&RecipeSticker{},
		&RecipeImage{},
	}
}

// RecipePatch: частичное обновление. nil означает «поле не передано, оставить как есть».
type RecipePatch struct {
	Title       *string
	Description *string
	Ingredients *[]string
	Steps       *[]string
	Stickers    *[]string
	Images      *[]string
}
