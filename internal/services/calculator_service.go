package services

import (
	"fmt"
	"strconv"
)

// Logger is the interface that wraps the Log method.
//
// Log records a single human-readable message. Implementations must not fail.
type Logger interface {
	Log(message string)
}

type calculatorService struct {
	logger Logger
}

// NewCalculatorService creates a new calculator service
func NewCalculatorService(logger Logger) *calculatorService {
	return &calculatorService{
		logger: logger,
	}
}

// Add returns the sum of a and b
func (s *calculatorService) Add(a, b float64) float64 {
	s.logger.Log(fmt.Sprintf("Addition operation called: %s + %s", formatNumber(a), formatNumber(b)))
	return a + b
}

// Subtract returns the difference of a and b
func (s *calculatorService) Subtract(a, b float64) float64 {
	s.logger.Log(fmt.Sprintf("Subtraction operation called: %s - %s", formatNumber(a), formatNumber(b)))
	return a - b
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
