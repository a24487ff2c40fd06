package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrMissingOption возвращается, когда не заполнена обязательная опция
	ErrMissingOption = errors.New("catalog: missing required option")

	// ErrInvalidOption возвращается, когда значение опции не из таблицы
	ErrInvalidOption = errors.New("catalog: invalid option value")

	// ErrInvalidCatalog возвращается при некорректном описании каталога
	ErrInvalidCatalog = errors.New("catalog: invalid catalog definition")
)
