package repo

import (
	"RecipeBox/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// UserRepository: контракт доступа к пользователям.
// Если запись не найдена, методы Get* возвращают gorm.ErrRecordNotFound,
// занятое имя в CreateUser даёт gorm.ErrDuplicatedKey.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт gorm-реализацию UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	db := r.db.WithContext(ctx)
	if err := db.Create(user).Error; err != nil {
		// modernc sqlite не переводит ошибки драйвера, поэтому занятость имени проверяем запросом
		if errors.Is(err, gorm.ErrDuplicatedKey) || usernameTaken(db, user.Username) {
			return nil, gorm.ErrDuplicatedKey
		}
		return nil, err
	}
	return user, nil
}

func usernameTaken(db *gorm.DB, username string) bool {
	var n int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false
	}
	return n > 0
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// usernamesByID возвращает имена для набора id (отсутствующие id пропускаются).
func usernamesByID(db *gorm.DB, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []model.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u.Username
	}
	return out, nil
}
