package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"RecipeBox/internal/cli/repo"
)

// ErrNoLogin: текущий пользователь не сохранён (нужен login или register).
var ErrNoLogin = errors.New("not logged in: run `rbcli login <username>` first")

// UserFSStore хранит имя текущего пользователя в файле.
// Пустой Path: файл last_login в пользовательском конфиг-каталоге.
type UserFSStore struct {
	Path string
}

var _ repo.UserContextStore = UserFSStore{}

// DefaultPath возвращает путь по умолчанию: <UserConfigDir>/RecipeBox/last_login.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "RecipeBox", "last_login"), nil
}

func (s UserFSStore) path() (string, error) {
	p := s.Path
	if p == "" {
		var err error
		if p, err = DefaultPath(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}
	return p, nil
}

// SaveLogin сохраняет имя пользователя в файл.
func (s UserFSStore) SaveLogin(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("empty login")
	}
	p, err := s.path()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(username), 0o600)
}

// LoadLogin читает имя пользователя; если его нет: ErrNoLogin.
func (s UserFSStore) LoadLogin() (string, error) {
	p, err := s.path()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoLogin
	}
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	login := strings.TrimRight(string(b), " \t\r\n")
	if login == "" {
		return "", ErrNoLogin
	}
	return login, nil
}

// Clear удаляет сохранённое имя. Отсутствие файла: не ошибка.
func (s UserFSStore) Clear() error {
	p, err := s.path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
