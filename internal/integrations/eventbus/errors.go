package eventbus

import "errors"

var (
	// ErrDisabled возвращается, когда брокер не настроен
	ErrDisabled = errors.New("eventbus: publisher disabled")

	// ErrPublish возвращается при ошибках публикации
	ErrPublish = errors.New("eventbus: publish failed")
)
