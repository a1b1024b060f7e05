//go:build !unix

package log

import (
	"log/slog"
	"runtime"
)

func GetOSInfo() (attrs []any) {
	return append(attrs,
		slog.String("GOOS", runtime.GOOS),
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("Go Version", runtime.Version()),
	)
}
