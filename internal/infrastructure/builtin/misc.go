package builtin

import (
	"context"
	"fmt"
	"io"
)

// clearScreen clears the display. The native command is preferred so
// terminal-specific capabilities apply; if spawning it fails the ANSI erase
// sequence is written directly.
func (t *Table) clearScreen(req Request) bool {
	name := "clear"
	if t.deps.GOOS == "windows" {
		name = "cls"
	}
	if t.deps.Runner != nil {
		outcome := t.deps.Runner.Run(context.Background(), name, t.deps.Timeout)
		if !outcome.Failed() {
			fmt.Fprint(t.deps.Out, outcome.Stdout)
			return true
		}
	}
	fmt.Fprint(t.deps.Out, "\x1b[2J\x1b[H")
	return true
}

const helpText = `
termsh help

Built-in commands:
  cd <dir>      - change directory (no argument: home directory)
  pwd           - print the current directory
  dir           - list the current directory (detailed)
  mkdir <dir>   - create a directory (including parents)
  rm <target>   - delete a file; rm -r <dir> deletes a directory tree
  cp <src> <dst> - copy a file, preserving timestamps
  cls / clear   - clear the screen
  help          - show this text
  exit / quit   - leave the shell

Anything else is executed as a system command.

Features:
  - command history (arrow keys), saved across sessions
  - tab completion for commands and paths
  - PowerShell-style prompt (%dir% shows the working directory)
  - command timeout control (cmd_timeout)
  - high-risk command confirmation

Configuration:
  edit the config file (see 'termsh config path') to customize
  prompt, cmd_timeout, save_history, high_risk_commands, max_history_size
`

// help prints the static help text.
func (t *Table) help(req Request) bool {
	io.WriteString(t.deps.Out, helpText+"\n")
	return true
}
