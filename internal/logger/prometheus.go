package logger

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// errorsHook feeds jobboard_errors_total from error-level entries.
type errorsHook struct{}

func (h *errorsHook) Fire(entry *log.Entry) error {
	metrics.ErrorsCounter.WithLabelValues(errorTypeOf(entry), entry.Level.String()).Inc()
	return nil
}

func (h *errorsHook) Levels() []log.Level {
	return log.AllLevels[:log.ErrorLevel+1]
}

// errorTypeOf prefers the explicit error_type field and otherwise classifies an attached error.
func errorTypeOf(entry *log.Entry) string {
	if errorType, ok := entry.Data[ErrorTypeField].(string); ok && errorType != "" {
		return errorType
	}
	if err, ok := entry.Data[log.ErrorKey].(error); ok && models.IsValidationError(err) {
		return ErrorTypeValidation
	}
	return "unknown"
}

func addErrorsHook() {
	log.AddHook(&errorsHook{})
	log.Debug("error metrics hook enabled")
}
