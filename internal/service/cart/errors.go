package cart

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("cart: service not found")

	// ErrInvalidAddress возвращается для адреса без идентификатора или названия
	ErrInvalidAddress = errors.New("cart: invalid address")

	// ErrInvalidSession возвращается для пустого идентификатора сессии
	ErrInvalidSession = errors.New("cart: invalid session id")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart: internal error")
)
