package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/doeshing/termsh/internal/ports"
)

// Reader wraps a readline instance behind the LineReader port: arrow-key
// history, tab completion over the builtin keywords and the current
// directory, and a persistent history file readline maintains itself.
type Reader struct {
	rl *readline.Instance
}

// NewReader opens the interactive line editor. keywords seed the completer
// alongside directory entries.
func NewReader(prompt, historyFile string, keywords []string) (*Reader, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, readline.PcItem(keyword, readline.PcItemDynamic(completePaths)))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		AutoComplete:      readline.NewPrefixCompleter(items...),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &Reader{rl: rl}, nil
}

// Readline blocks until the user finishes a line. Interrupt and EOF pass
// through as readline.ErrInterrupt and io.EOF for the loop to translate.
func (r *Reader) Readline() (string, error) {
	return r.rl.Readline()
}

// SetPrompt updates the prompt before the next read.
func (r *Reader) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

// AppendHistory records a line in readline's own arrow-key history.
func (r *Reader) AppendHistory(line string) {
	_ = r.rl.SaveHistory(line)
}

// Close releases the terminal.
func (r *Reader) Close() error {
	return r.rl.Close()
}

// completePaths offers the current directory's entries, with a trailing
// separator on directories so completion can keep descending.
func completePaths(line string) []string {
	dir := "."
	if idx := strings.LastIndexAny(line, " \t"); idx >= 0 {
		partial := line[idx+1:]
		if d := filepath.Dir(partial); d != "." && d != "" {
			dir = d
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += string(filepath.Separator)
		}
		names = append(names, name)
	}
	return names
}

var _ ports.LineReader = (*Reader)(nil)
