//go:build unix

package log

import (
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

// GetOSInfo describes the host for the startup record.
func GetOSInfo() (attrs []any) {
	attrs = append(attrs,
		slog.String("GOOS", runtime.GOOS),
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("Go Version", runtime.Version()),
	)

	var uname unix.Utsname
	if err := unix.Uname(&uname); err == nil {
		attrs = append(attrs,
			slog.String("sysname", cString(uname.Sysname[:])),
			slog.String("release", cString(uname.Release[:])),
			slog.String("machine", cString(uname.Machine[:])),
		)
	}
	return attrs
}

func cString(b []byte) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return strings.TrimSpace(string(b[:n]))
}
