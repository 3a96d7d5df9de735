package ports

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)

	// SetVerbose lowers the level threshold to debug.
	SetVerbose(v bool)
}
