// Package builtin implements the commands termsh handles in-process instead
// of spawning a child: navigation, listing, directory and file manipulation.
package builtin

import (
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/doeshing/termsh/internal/ports"
)

// Request carries one invocation into a handler: the raw line as typed
// (trimmed of surrounding whitespace only) and the resolved auto-confirm
// flag, which only the rm handler consults.
type Request struct {
	Line        string
	AutoConfirm bool
}

// HandlerFunc executes a builtin and reports whether the session continues.
// All table handlers return true; exit/quit never reach the table.
type HandlerFunc func(req Request) bool

// Deps are the collaborators handlers need. Out/Err default to the process
// streams; GOOS defaults to the runtime value.
type Deps struct {
	Runner   ports.CommandRunner
	Prompter ports.ConfirmationPrompter
	Logger   ports.Logger
	Out      io.Writer
	Err      io.Writer
	GOOS     string
	// Timeout bounds the native listing and screen-clear invocations.
	Timeout time.Duration
}

// Table is the static keyword-to-handler mapping, resolved once at startup.
// The command set is closed: there is no runtime registration.
type Table struct {
	deps     Deps
	handlers map[string]HandlerFunc
}

// NewTable wires the builtin handlers.
func NewTable(deps Deps) *Table {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Err == nil {
		deps.Err = os.Stderr
	}
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}
	if deps.Timeout <= 0 {
		deps.Timeout = 30 * time.Second
	}
	t := &Table{deps: deps}
	t.handlers = map[string]HandlerFunc{
		"cd":    t.cd,
		"pwd":   t.pwd,
		"dir":   t.dir,
		"mkdir": t.mkdir,
		"rm":    t.rm,
		"cp":    t.cp,
		"cls":   t.clearScreen,
		"clear": t.clearScreen,
		"help":  t.help,
	}
	return t
}

// Lookup resolves a lowercase keyword. Matching is exact-token: "mkdirx"
// does not alias to "mkdir".
func (t *Table) Lookup(keyword string) (HandlerFunc, bool) {
	handler, ok := t.handlers[keyword]
	return handler, ok
}

// Keywords returns the sorted builtin names, for completion and help.
func (t *Table) Keywords() []string {
	keys := make([]string, 0, len(t.handlers)+2)
	for k := range t.handlers {
		keys = append(keys, k)
	}
	keys = append(keys, "exit", "quit")
	sort.Strings(keys)
	return keys
}

// argsAfterKeyword strips the leading command token and returns the rest of
// the line with surrounding whitespace removed.
func argsAfterKeyword(line string) string {
	trimmed := strings.TrimSpace(line)
	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(trimmed[idx:])
}

// unquote strips one layer of matching surrounding quote characters.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
