package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tabtidy/tabtidy/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// SetLogConf installs the default slog logger. Records go to stderr, since
// stdout carries command output, and are also appended to file when set.
// A file of AutoLogFile means DefaultLogFile.
func SetLogConf(level, file string) {
	SetLogOutput(level, file, os.Stderr)
}

func SetLogOutput(level, file string, w io.Writer) {
	if file = ResolveLogFile(file); file != "" {
		w = io.MultiWriter(w, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    5, // megabytes
			MaxBackups: 5,
			MaxAge:     7, // days
			LocalTime:  true,
			Compress:   true,
		})
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(timeFormat))
			}
			return a
		},
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func LogHeader(version string, cfg *config.Config) {
	slog.Debug("tabtidy started", append([]any{slog.String("version", version), slog.Any("config", cfg)}, GetOSInfo()...)...)
}
