package schedule

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts slog to the cron logger. Cron info messages are
// chatty, so they are logged at debug level.
func NewSlogLogger(logger *slog.Logger) cron.Logger {
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
