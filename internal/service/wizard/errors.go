package wizard

import "errors"

var (
	// ErrIncompleteStep возвращается при переходе вперед с незаполненным шагом
	ErrIncompleteStep = errors.New("wizard: step is incomplete")

	// ErrStepSkipped возвращается при попытке перескочить шаг
	ErrStepSkipped = errors.New("wizard: steps cannot be skipped")

	// ErrAlreadySubmitted возвращается для действий после успешной отправки
	ErrAlreadySubmitted = errors.New("wizard: reservation already submitted")

	// ErrInvalidContact возвращается, когда контакты не проходят проверку
	ErrInvalidContact = errors.New("wizard: invalid contact info")

	// ErrDateNotSelectable возвращается для сегодняшней, прошедшей даты или воскресенья
	ErrDateNotSelectable = errors.New("wizard: date is not selectable")

	// ErrSlotUnavailable возвращается, когда слот занят или закрыт
	ErrSlotUnavailable = errors.New("wizard: slot is not available")

	// ErrSubmitInProgress возвращается при повторной отправке той же сессии
	ErrSubmitInProgress = errors.New("wizard: submission already in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
