package builtin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRemoveMissingFileReportsBeforePrompting(t *testing.T) {
	chdir(t, t.TempDir())
	prompter := &stubPrompter{answer: true}
	table, _, errOut := newTestTable(prompter)

	handler, _ := table.Lookup("rm")
	handler(Request{Line: "rm no_such_file.txt"})

	if !strings.Contains(errOut.String(), `file "no_such_file.txt" not found`) {
		t.Errorf("expected not-found report, got %q", errOut.String())
	}
	if prompter.asked != 0 {
		t.Error("missing target must be reported without asking for confirmation")
	}
}

func TestRemoveMissingDirectoryWording(t *testing.T) {
	chdir(t, t.TempDir())
	table, _, errOut := newTestTable(&stubPrompter{})

	handler, _ := table.Lookup("rm")
	handler(Request{Line: "rm -r no_such_dir"})

	if !strings.Contains(errOut.String(), `directory "no_such_dir" not found`) {
		t.Errorf("recursive form should use directory wording, got %q", errOut.String())
	}
}

func TestRemoveDirectoryAutoConfirm(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll(filepath.Join("victim", "nested"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	prompter := &stubPrompter{answer: false}
	table, out, _ := newTestTable(prompter)

	handler, _ := table.Lookup("rm")
	handler(Request{Line: "rm -r victim", AutoConfirm: true})

	if prompter.asked != 0 {
		t.Error("auto-confirm must answer the prompt, not route through the prompter")
	}
	if !strings.Contains(out.String(), `Auto-confirmed deletion of "victim"`) {
		t.Errorf("auto-confirm must stay visible, got %q", out.String())
	}
	if _, err := os.Stat("victim"); !os.IsNotExist(err) {
		t.Error("directory should be gone")
	}
}

func TestRemoveDeclinedLeavesDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.Mkdir("keep", 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	prompter := &stubPrompter{answer: false}
	table, out, _ := newTestTable(prompter)

	handler, _ := table.Lookup("rm")
	handler(Request{Line: "rm -r keep"})

	if prompter.asked != 1 {
		t.Fatalf("prompter asked %d times, want 1", prompter.asked)
	}
	if !strings.Contains(out.String(), "Deletion cancelled") {
		t.Errorf("expected cancellation notice, got %q", out.String())
	}
	if _, err := os.Stat("keep"); err != nil {
		t.Errorf("declined deletion must not touch the directory: %v", err)
	}
}

func TestRemovePlainFileConfirmed(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("gone.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	table, out, _ := newTestTable(&stubPrompter{answer: true})

	handler, _ := table.Lookup("rm")
	handler(Request{Line: "rm gone.txt"})

	if !strings.Contains(out.String(), `Deleted "gone.txt"`) {
		t.Errorf("expected deletion notice, got %q", out.String())
	}
	if _, err := os.Stat("gone.txt"); !os.IsNotExist(err) {
		t.Error("file should be deleted")
	}
}

func TestCopyIntoExistingDirectoryKeepsBaseName(t *testing.T) {
	chdir(t, t.TempDir())
	stamp := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if err := os.WriteFile("a.txt", []byte("payload"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Chtimes("a.txt", stamp, stamp); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Mkdir("backup", 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	table, _, errOut := newTestTable(nil)

	handler, _ := table.Lookup("cp")
	handler(Request{Line: "cp a.txt backup"})

	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %q", errOut.String())
	}
	copied := filepath.Join("backup", "a.txt")
	data, err := os.ReadFile(copied)
	if err != nil {
		t.Fatalf("copy missing: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("copied content = %q", data)
	}
	info, err := os.Stat(copied)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(stamp) {
		t.Errorf("modification time not preserved: got %v, want %v", info.ModTime(), stamp)
	}
}

func TestCopyQuotedDestinationWithSpaces(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("a.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	table, _, errOut := newTestTable(nil)

	handler, _ := table.Lookup("cp")
	handler(Request{Line: `cp a.txt "my copy.txt"`})

	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %q", errOut.String())
	}
	if _, err := os.Stat("my copy.txt"); err != nil {
		t.Errorf("quoted destination not created: %v", err)
	}
}

func TestCopyMissingSource(t *testing.T) {
	chdir(t, t.TempDir())
	table, _, errOut := newTestTable(nil)

	handler, _ := table.Lookup("cp")
	handler(Request{Line: "cp nope.txt out.txt"})

	if !strings.Contains(errOut.String(), `source "nope.txt" not found`) {
		t.Errorf("expected missing-source report, got %q", errOut.String())
	}
}

func TestMkdirIsIdempotent(t *testing.T) {
	chdir(t, t.TempDir())
	table, _, errOut := newTestTable(nil)

	handler, _ := table.Lookup("mkdir")
	handler(Request{Line: "mkdir nested/deep"})
	handler(Request{Line: "mkdir nested/deep"})

	if errOut.Len() != 0 {
		t.Fatalf("repeat mkdir must succeed, got %q", errOut.String())
	}
	info, err := os.Stat(filepath.Join("nested", "deep"))
	if err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}

func TestChangeDirectoryAndBack(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)
	if err := os.Mkdir("sub", 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	table, out, errOut := newTestTable(nil)

	cd, _ := table.Lookup("cd")
	pwd, _ := table.Lookup("pwd")

	cd(Request{Line: "cd sub"})
	if errOut.Len() != 0 {
		t.Fatalf("cd failed: %q", errOut.String())
	}
	pwd(Request{Line: "pwd"})
	if !strings.Contains(out.String(), "sub") {
		t.Errorf("pwd after cd = %q", out.String())
	}

	errOut.Reset()
	cd(Request{Line: "cd missing_dir"})
	if !strings.Contains(errOut.String(), `"missing_dir" not found`) {
		t.Errorf("expected not-found report, got %q", errOut.String())
	}
}

func TestIsRiskyDelete(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"rm -rf build", true},
		{"rm -r *", true},
		{"rm file.txt", false},
		{"rm -r mydir", false},
		{"RM -RF build", true},
	}
	for _, tt := range tests {
		if got := isRiskyDelete(tt.line); got != tt.want {
			t.Errorf("isRiskyDelete(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
