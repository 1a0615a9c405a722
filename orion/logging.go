package orion

import (
	"log/slog"
	"os"
)

// SetupLogging installs a text handler as the default slog logger. The
// level can be overwritten using the VECMESH_LOG_LEVEL environment variable.
func SetupLogging(level slog.Level) {
	if value, ok := os.LookupEnv("VECMESH_LOG_LEVEL"); ok {
		if err := level.UnmarshalText([]byte(value)); err != nil {
			slog.Warn("Invalid log level", slog.String("value", value))
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
