package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init; Init swaps in the production handler.
var Log = slog.Default()

func Init() {
	// JSON handler so log lines stay machine-parseable in production
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
