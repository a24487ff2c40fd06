package submit_reservation

import "errors"

var (
	// ErrMissingItems возвращается, когда корзина пуста
	ErrMissingItems = errors.New("submit_reservation: cart has no items")

	// ErrMissingAddress возвращается, когда не выбран адрес
	ErrMissingAddress = errors.New("submit_reservation: address is missing")

	// ErrMissingContact возвращается, когда не указаны контакты
	ErrMissingContact = errors.New("submit_reservation: contact info is missing")

	// ErrMissingSlot возвращается, когда не выбран слот
	ErrMissingSlot = errors.New("submit_reservation: schedule slot is missing")

	// ErrDateNotSelectable возвращается для сегодняшней, прошедшей даты или воскресенья
	ErrDateNotSelectable = errors.New("submit_reservation: date is not selectable")

	// ErrSlotUnavailable возвращается, когда администратор закрыл слот
	ErrSlotUnavailable = errors.New("submit_reservation: slot closed by administrator")

	// ErrSlotTaken возвращается, когда слот только что занял другой клиент
	ErrSlotTaken = errors.New("submit_reservation: slot was just booked by someone else")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)
