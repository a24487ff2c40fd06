package formnotifier

import "errors"

var (
	// ErrDisabled возвращается, когда адрес формы не настроен
	ErrDisabled = errors.New("formnotifier: endpoint not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("formnotifier: internal error")

	// ErrInvalidResponse возвращается при неожиданном ответе
	ErrInvalidResponse = errors.New("formnotifier: invalid response")
)
