package cartmirror

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cartmirror.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cartmirror.repository: failed to execute query")

	// ErrEncode возвращается при ошибке сериализации form_data
	ErrEncode = errors.New("cartmirror.repository: failed to encode form data")
)
