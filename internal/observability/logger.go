package observability

import (
	"log/slog"
	"os"
)

// process-wide JSON logger to stdout.
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger carrying additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}
