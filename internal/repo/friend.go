package repo

import (
	"RecipeBox/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository: контракт доступа к связям дружбы.
type FriendRepository interface {
	// AddPair создаёт обе направленные строки (user→friend и friend→user).
	// Уже существующие строки молча пропускаются.
	AddPair(ctx context.Context, userID, friendID int64) error
	// ListFriendIDs возвращает id друзей пользователя.
	ListFriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

type friendRepo struct {
	db *gorm.DB
}

// NewFriendRepository создаёт gorm-реализацию FriendRepository.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepo{db: db}
}

func (r *friendRepo) AddPair(ctx context.Context, userID, friendID int64) error {
	rows := []model.Friend{
		{UserID: userID, FriendID: friendID},
		{UserID: friendID, FriendID: userID},
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
				DoNothing: true,
			}).Create(&rows[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *friendRepo) ListFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).Model(&model.Friend{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
