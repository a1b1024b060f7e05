package log

import (
	"os"
	"path/filepath"
	"runtime"
)

// AutoLogFile as the log file name selects DefaultLogFile. A bare --log-file
// flag sets it.
const AutoLogFile = "auto"

// ResolveLogFile maps AutoLogFile to DefaultLogFile and returns any other
// name unchanged.
func ResolveLogFile(file string) string {
	if file == AutoLogFile {
		return DefaultLogFile()
	}
	return file
}

// DefaultLogFile returns where a log file is kept when the user asks for one
// without naming it: ~/Library/Logs/tabtidy on macOS and ~/.tabtidy elsewhere.
// The directory is created when missing.
func DefaultLogFile() string {
	dir := logDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		dir = filepath.Join(os.TempDir(), "tabtidy")
		_ = os.MkdirAll(dir, 0755)
	}
	return filepath.Join(dir, "tabtidy.log")
}

func logDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tabtidy")
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tabtidy")
	}
	return filepath.Join(home, ".tabtidy")
}
