package services

import (
	"go.uber.org/zap"
)

type loggerService struct {
	logger *zap.Logger
}

// NewLoggerService creates a Logger writing info entries through zap
func NewLoggerService(logger *zap.Logger) *loggerService {
	return &loggerService{
		logger: logger,
	}
}

// Log writes the message at info level
func (s *loggerService) Log(message string) {
	s.logger.Info(message)
}
