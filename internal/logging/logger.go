package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global slog logger: JSON records to stdout.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
