package notifier

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учитывает отправленные хуки
type MetricsRecorder interface {
	RecordNotification(kind string, err error)
}
