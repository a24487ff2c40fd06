package list_services

import "github.com/m04kA/CleanHome-BookingService/internal/catalog"

type Catalog interface {
	List() []*catalog.Entry
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
