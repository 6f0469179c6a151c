package service

import "errors"

// Категории ошибок сервисного слоя. Конкретная ошибка (newError) оборачивает одну из них
// вместе с сообщением для клиента.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// Message возвращает клиентскую часть сообщения (без префикса категории).
func Message(err error) string {
	var m *messageError
	if errors.As(err, &m) {
		return m.msg
	}
	return err.Error()
}

type messageError struct {
	kind error
	msg  string
}

func (e *messageError) Error() string { return e.kind.Error() + ": " + e.msg }
func (e *messageError) Unwrap() error { return e.kind }

// newError создаёт ошибку категории kind с сообщением msg.
func newError(kind error, msg string) error {
	return &messageError{kind: kind, msg: msg}
}
