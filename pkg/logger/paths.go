/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/pythia/pkg/xdg"
)

const (
	// AppID names the per-user state and config directories.
	AppID = "pythia"

	logFileName = "pythia.log"
)

// PlatformLogPaths returns fallback log paths in order of priority for
// the platform.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "darwin", "linux":
		return []string{
			xdg.XDGStatePath(AppID, logFileName), // e.g. ~/.local/state/pythia/pythia.log
			"./pythia.log",                       // current working dir, ideal for devs
			filepath.Join(os.TempDir(), AppID, logFileName),
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), AppID, logFileName),
			".\\pythia.log",
		}
	default:
		return []string{"./pythia.log"}
	}
}

// EnsureLogPermissions creates the log directory and file as needed
// and tightens file permissions to owner read/write. Directories that
// already exist keep their modes.
func EnsureLogPermissions(logFilePath string) error {
	dir := filepath.Dir(logFilePath)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, xdg.DirPermOwnerOnly); err != nil {
			return err
		}
	}

	if _, err := os.Stat(logFilePath); os.IsNotExist(err) {
		file, err := os.Create(logFilePath)
		if err != nil {
			return err
		}
		file.Close()
	}

	return os.Chmod(logFilePath, xdg.FilePermOwnerReadWrite)
}
