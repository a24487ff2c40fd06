package cart

import "errors"

var (
	// ErrCartNotFound возвращается, когда для сессии нет сохраненной корзины
	ErrCartNotFound = errors.New("cart.repository: cart not found")

	// ErrStorage возвращается при ошибках Redis
	ErrStorage = errors.New("cart.repository: storage error")

	// ErrDecode возвращается, когда сохраненная корзина не читается
	ErrDecode = errors.New("cart.repository: failed to decode cart")
)
