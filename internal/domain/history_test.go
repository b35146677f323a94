package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/termsh/internal/domain"
)

// TestCommandLog_Append tests consecutive deduplication and capping
func TestCommandLog_Append(t *testing.T) {
	tests := []struct {
		name     string
		cap      int
		commands []string
		want     []string
	}{
		{
			name:     "immediate repeats collapse",
			cap:      10,
			commands: []string{"ls", "ls", "ls"},
			want:     []string{"ls"},
		},
		{
			name:     "repeats separated by another command both remain",
			cap:      10,
			commands: []string{"ls", "pwd", "ls"},
			want:     []string{"ls", "pwd", "ls"},
		},
		{
			name:     "blank entries are ignored",
			cap:      10,
			commands: []string{"", "ls", ""},
			want:     []string{"ls"},
		},
		{
			name:     "cap drops oldest first",
			cap:      2,
			commands: []string{"a", "b", "c"},
			want:     []string{"b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := domain.NewCommandLog(tt.cap)
			for _, cmd := range tt.commands {
				log.Append(cmd)
			}
			if diff := cmp.Diff(tt.want, log.Entries()); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestCommandLog_Seed tests loading persisted entries with cap applied
func TestCommandLog_Seed(t *testing.T) {
	log := domain.NewCommandLog(2)
	log.Seed([]string{"one", "two", "three"})

	want := []string{"two", "three"}
	if diff := cmp.Diff(want, log.Entries()); diff != "" {
		t.Errorf("seed mismatch (-want +got):\n%s", diff)
	}
}

// TestCommandLog_EntriesIsCopy tests that callers cannot mutate the log
func TestCommandLog_EntriesIsCopy(t *testing.T) {
	log := domain.NewCommandLog(5)
	log.Append("ls")

	entries := log.Entries()
	entries[0] = "mutated"

	if log.Entries()[0] != "ls" {
		t.Error("Entries must return a copy")
	}
}
