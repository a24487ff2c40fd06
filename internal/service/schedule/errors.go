package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrNothingToSave возвращается, когда у редактора нет несохраненных изменений
	ErrNothingToSave = errors.New("schedule: no pending changes")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
