package navkbd

import (
	"log/slog"

	"github.com/pawndev/navkbd/pkg/navkbd/internal"
)

// Init applies the logging part of the configuration. Call it once before
// opening keyboards.
func Init(config Config) {
	if config.LogFile != "" {
		internal.SetLogFilename(config.LogFile)
	}

	level := internal.ParseLevel(config.LogLevel)
	internal.SetLogLevel(level)
	if level == slog.LevelDebug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func CloseLogger() {
	internal.CloseLogger()
}
