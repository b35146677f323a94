package security

import "testing"

func TestClassifierFlagsBuiltinFragments(t *testing.T) {
	classifier := NewClassifier(nil)

	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{"recursive force delete", "rm -rf /tmp/build", true},
		{"raw disk write", "dd if=/dev/zero of=/dev/sda", true},
		{"windows wildcard delete", "del *.log", true},
		{"format command", "format c:", true},
		{"windows recursive rmdir", "rmdir /s /q build", true},
		{"fragment inside longer token still flagged", "echo unsafe-rm -rf-marker", true},
		{"case folded", "RM -RF /", true},
		{"safe listing", "ls -la", false},
		{"safe git", "git status", false},
		{"empty line", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.IsHighRisk(tt.command); got != tt.want {
				t.Errorf("IsHighRisk(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

func TestClassifierHonorsCustomFragments(t *testing.T) {
	classifier := NewClassifier([]string{"DROP TABLE", "shutdown"})

	if !classifier.IsHighRisk("mysql -e 'drop table users'") {
		t.Error("custom fragment should match case-insensitively")
	}
	if !classifier.IsHighRisk("sudo shutdown -h now") {
		t.Error("custom fragment should match")
	}
	if classifier.IsHighRisk("echo hello") {
		t.Error("unrelated command should not be flagged")
	}
}

func TestClassifierEmptyCustomList(t *testing.T) {
	classifier := NewClassifier([]string{})

	if classifier.IsHighRisk("ls -la") {
		t.Error("empty custom list must not flag a safe command")
	}
}
