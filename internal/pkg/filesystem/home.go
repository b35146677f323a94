package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// AppDataDir returns the per-user directory termsh stores its state in:
// %APPDATA%\termsh on Windows, ~/.termsh elsewhere.
func AppDataDir() string {
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return filepath.Join(appdata, "termsh")
		}
		return filepath.Join(UserHomeDir(), "AppData", "Roaming", "termsh")
	}
	return filepath.Join(UserHomeDir(), ".termsh")
}
