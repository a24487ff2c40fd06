package discard_schedule

type ScheduleService interface {
	Discard(editor string) int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
