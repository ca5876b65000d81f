package logger

// NoOpLogger is a logger that does nothing.
// Use this for testing or when logging should be disabled.
type NoOpLogger struct{}

// NewNop creates a new no-op logger instance.
func NewNop() Interface {
	return &NoOpLogger{}
}

// Debug does nothing.
func (l *NoOpLogger) Debug(msg string, fields ...any) {}

// Info does nothing.
func (l *NoOpLogger) Info(msg string, fields ...any) {}

// Warn does nothing.
func (l *NoOpLogger) Warn(msg string, fields ...any) {}

// Error does nothing.
func (l *NoOpLogger) Error(msg string, fields ...any) {}

// With returns the same no-op logger.
func (l *NoOpLogger) With(fields ...any) Interface {
	return l
}

// WithComponent returns the same no-op logger.
func (l *NoOpLogger) WithComponent(component string) Interface {
	return l
}

// Sync does nothing and returns nil.
func (l *NoOpLogger) Sync() error {
	return nil
}
