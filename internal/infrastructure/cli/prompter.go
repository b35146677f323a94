package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/termsh/internal/ports"
)

// StdinPrompter asks yes/no questions on the controlling terminal. Only a
// bare "y" or "Y" counts as consent; everything else, including EOF, is a no.
type StdinPrompter struct {
	in      *bufio.Reader
	out     io.Writer
	enabled bool
}

// NewStdinPrompter builds a prompter over the given streams. Enabled is
// detected from the input: only a character device counts as interactive.
func NewStdinPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	enabled := true
	if f, ok := in.(*os.File); ok {
		if info, err := f.Stat(); err == nil {
			enabled = info.Mode()&os.ModeCharDevice != 0
		}
	}
	return &StdinPrompter{
		in:      bufio.NewReader(in),
		out:     out,
		enabled: enabled,
	}
}

// Confirm prints the question and reads one answer line.
func (p *StdinPrompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y", nil
}

// Enabled reports whether a human can actually answer.
func (p *StdinPrompter) Enabled() bool {
	return p.enabled
}

var _ ports.ConfirmationPrompter = (*StdinPrompter)(nil)
