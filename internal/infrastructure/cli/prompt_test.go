package cli

import (
	"strings"
	"testing"

	"github.com/doeshing/termsh/internal/pkg/filesystem"
)

func TestDisplayDirWindowsKeepsFullPath(t *testing.T) {
	got := displayDir(`C:\Users\dev\projects\termsh`, "windows")
	if got != `C:\Users\dev\projects\termsh` {
		t.Errorf("windows display = %q, want the untouched path", got)
	}
}

func TestDisplayDirCollapsesHome(t *testing.T) {
	home := filesystem.UserHomeDir()
	if home == "" {
		t.Skip("no home directory in this environment")
	}

	if got := displayDir(home, "linux"); got != "~" {
		t.Errorf("home display = %q, want ~", got)
	}
	got := displayDir(home+"/code", "linux")
	if !strings.HasPrefix(got, "~") {
		t.Errorf("display under home = %q, want ~ prefix", got)
	}
}

func TestDisplayDirShortensDeepPaths(t *testing.T) {
	got := displayDir("/var/lib/docker/volumes/data", "linux")
	if !strings.HasPrefix(got, "…") {
		t.Errorf("deep path display = %q, want shortened form", got)
	}
	if !strings.HasSuffix(got, "volumes/data") {
		t.Errorf("deep path display = %q, want the last two components kept", got)
	}
}

func TestRenderPromptSubstitutesPlaceholder(t *testing.T) {
	chdir(t, t.TempDir())

	got := RenderPrompt("PS %dir%> ", "linux")
	if !strings.HasPrefix(got, "PS ") || !strings.HasSuffix(got, "> ") {
		t.Errorf("rendered prompt = %q", got)
	}
	if strings.Contains(got, "%dir%") {
		t.Errorf("placeholder not substituted: %q", got)
	}

	if got := RenderPrompt("$ ", "linux"); got != "$ " {
		t.Errorf("template without placeholder must pass through, got %q", got)
	}
}
