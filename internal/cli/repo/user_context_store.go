package repo

// UserContextStore абстракция для хранения контекста пользователя (последний логин).
type UserContextStore interface {
	SaveLogin(username string) error
	LoadLogin() (string, error)
	Clear() error
}
