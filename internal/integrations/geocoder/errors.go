package geocoder

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoder client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("geocoder client: invalid response")

	// ErrEmptyQuery возвращается для пустого запроса
	ErrEmptyQuery = errors.New("geocoder client: empty query")
)
