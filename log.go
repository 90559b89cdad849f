package ltdc

import (
	"log/slog"

	"periph.io/x/devices/v3/ltdc/internal/logger"
)

// SetLogger configures the logger for ltdc and all its sub-packages.
// By default nothing is logged. Pass nil to restore that.
//
// Log levels used:
//   - [slog.LevelDebug]: rejected lines, layer switches, text truncation
//   - [slog.LevelInfo]: device creation
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.L()
}
