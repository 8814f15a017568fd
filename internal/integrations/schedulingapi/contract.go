package schedulingapi

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик внешних запросов.
// Реализуется pkg/metrics; nil отключает запись.
type MetricsRecorder interface {
	ObserveExternal(operation, status string, seconds float64)
}
