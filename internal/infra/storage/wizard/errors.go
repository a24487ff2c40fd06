package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда состояние мастера не найдено
	ErrSessionNotFound = errors.New("wizard.repository: session not found")

	// ErrStorage возвращается при ошибках Redis
	ErrStorage = errors.New("wizard.repository: storage error")

	// ErrDecode возвращается, когда сохраненное состояние не читается
	ErrDecode = errors.New("wizard.repository: failed to decode session")
)
