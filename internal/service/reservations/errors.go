package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrSlotTaken возвращается при восстановлении резервации на занятый слот
	ErrSlotTaken = errors.New("reservations: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
