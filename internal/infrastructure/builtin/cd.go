package builtin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/doeshing/termsh/internal/pkg/filesystem"
)

// cd changes the working directory. An empty path means the user's home
// directory. Errors are reported with distinct kinds so the user can tell a
// typo from a permission problem.
func (t *Table) cd(req Request) bool {
	path := unquote(argsAfterKeyword(req.Line))
	if path == "" {
		path = filesystem.UserHomeDir()
	}

	if err := os.Chdir(path); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(t.deps.Err, "cd: directory %q not found (check the path, spaces and casing)\n", path)
		case errors.Is(err, fs.ErrPermission):
			fmt.Fprintf(t.deps.Err, "cd: permission denied for %q\n", path)
		case errors.Is(err, syscall.ENOTDIR):
			fmt.Fprintf(t.deps.Err, "cd: %q is not a directory\n", path)
		default:
			fmt.Fprintf(t.deps.Err, "cd: %v\n", err)
		}
	}
	return true
}

// pwd prints the current working directory.
func (t *Table) pwd(req Request) bool {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(t.deps.Err, "pwd: %v\n", err)
		return true
	}
	fmt.Fprintln(t.deps.Out, dir)
	return true
}
