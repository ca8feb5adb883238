package ports

import "io"

// Logger defines the logging interface used across the application.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, rendering the full cause chain.
	Error(err error)

	// SetOutput redirects the logger's output. Used for testing.
	SetOutput(w io.Writer)
}
