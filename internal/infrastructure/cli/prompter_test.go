package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirmAcceptsOnlyExplicitYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"yes\n", false},
		{"\n", false},
		{"Y", true}, // EOF right after the answer
		{"", false}, // EOF with no answer at all
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer)+"_input", func(t *testing.T) {
			out := &bytes.Buffer{}
			prompter := NewStdinPrompter(strings.NewReader(tt.answer), out)

			got, err := prompter.Confirm("Proceed? (y/N) ")
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm with input %q = %v, want %v", tt.answer, got, tt.want)
			}
			if !strings.Contains(out.String(), "Proceed?") {
				t.Error("question was not printed")
			}
		})
	}
}

func TestNonFileInputCountsAsInteractive(t *testing.T) {
	prompter := NewStdinPrompter(strings.NewReader(""), &bytes.Buffer{})
	if !prompter.Enabled() {
		t.Error("plain readers default to enabled; only non-terminal files disable")
	}
}
