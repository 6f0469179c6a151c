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

// UserService: регистрация, вход по имени и дружба.
type UserService struct {
	users   repo.UserRepository
	friends repo.FriendRepository
	logger  *zap.SugaredLogger
}

// Profile: ответ /api/me.
type Profile struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Friends  []int64 `json:"friends"`
}

func NewUserService(users repo.UserRepository, friends repo.FriendRepository, logger *zap.SugaredLogger) *UserService {
	return &UserService{users: users, friends: friends, logger: logger}
}

// Register создаёт пользователя. Занятое имя: ErrConflict.
func (s *UserService) Register(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, newError(ErrValidation, "username required")
	}

	existing, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newError(ErrConflict, "username already exists")
	}

	user, err := s.users.CreateUser(ctx, &model.User{Username: username})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// имя заняли между проверкой и вставкой
		return nil, newError(ErrConflict, "username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Infow("user registered", "id", user.ID, "username", user.Username)
	return user, nil
}

// Login возвращает пользователя по имени, создавая его при первом входе.
func (s *UserService) Login(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, newError(ErrValidation, "username required")
	}

	existing, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user, err := s.users.CreateUser(ctx, &model.User{Username: username})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// параллельный вход под тем же именем уже создал пользователя
		existing, err = s.lookup(ctx, username)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("user %q vanished after duplicate insert", username)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Infow("user created on login", "id", user.ID, "username", user.Username)
	return user, nil
}

// Resolve находит пользователя для заголовка X-User. Неизвестное имя: ErrNotFound.
func (s *UserService) Resolve(ctx context.Context, username string) (*model.User, error) {
	user, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, newError(ErrNotFound, "no such user")
	}
	return user, nil
}

// AddFriend связывает me и friendUsername взаимной дружбой. Повторное добавление: не ошибка.
func (s *UserService) AddFriend(ctx context.Context, me model.Identity, friendUsername string) error {
	friendUsername = strings.TrimSpace(friendUsername)
	if friendUsername == "" {
		return newError(ErrValidation, "friendUsername required")
	}

	friend, err := s.lookup(ctx, friendUsername)
	if err != nil {
		return err
	}
	if friend == nil {
		return newError(ErrNotFound, "friend user not found")
	}
	if friend.ID == me.UserID {
		return newError(ErrValidation, "cannot friend yourself")
	}

	if err := s.friends.AddPair(ctx, me.UserID, friend.ID); err != nil {
		return fmt.Errorf("add friend pair: %w", err)
	}
	s.logger.Infow("friends linked", "user", me.UserID, "friend", friend.ID)
	return nil
}

// Me возвращает профиль пользователя со списком id друзей.
func (s *UserService) Me(ctx context.Context, me model.Identity) (*Profile, error) {
	ids, err := s.friends.ListFriendIDs(ctx, me.UserID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return &Profile{ID: me.UserID, Username: me.Username, Friends: ids}, nil
}

// lookup возвращает (nil, nil), если пользователя нет.
func (s *UserService) lookup(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
