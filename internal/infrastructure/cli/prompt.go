package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/termsh/internal/pkg/filesystem"
)

// RenderPrompt expands the %dir% placeholder in the configured prompt
// template. On Windows the full path is shown, matching the cmd.exe habit;
// elsewhere the home directory collapses to ~ and deep paths keep only the
// last two components.
func RenderPrompt(template, goos string) string {
	dir, err := os.Getwd()
	if err != nil {
		dir = "?"
	}
	return strings.ReplaceAll(template, "%dir%", displayDir(dir, goos))
}

func displayDir(dir, goos string) string {
	if goos == "windows" {
		return dir
	}
	if home := filesystem.UserHomeDir(); home != "" {
		if dir == home {
			return "~"
		}
		if strings.HasPrefix(dir, home+string(filepath.Separator)) {
			dir = "~" + dir[len(home):]
		}
	}
	parts := strings.Split(dir, string(filepath.Separator))
	if len(parts) > 3 {
		return "…" + string(filepath.Separator) + filepath.Join(parts[len(parts)-2:]...)
	}
	return dir
}
