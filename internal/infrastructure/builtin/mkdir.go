package builtin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/doeshing/termsh/internal/domain"
)

// mkdir creates a directory including intermediate directories. Creating a
// directory that already exists is a silent success.
func (t *Table) mkdir(req Request) bool {
	name := unquote(argsAfterKeyword(req.Line))
	if name == "" {
		fmt.Fprintln(t.deps.Err, "mkdir: missing directory name (example: mkdir test_dir)")
		return true
	}

	if err := os.MkdirAll(name, domain.DirectoryPermissions); err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			fmt.Fprintf(t.deps.Err, "mkdir: permission denied creating %q\n", name)
		case errors.Is(err, fs.ErrExist):
			// MkdirAll only reports ErrExist when a path element is a file.
			fmt.Fprintf(t.deps.Err, "mkdir: %q exists and is not a directory\n", name)
		default:
			fmt.Fprintf(t.deps.Err, "mkdir: %v\n", err)
		}
		return true
	}

	fmt.Fprintf(t.deps.Out, "Directory %q created (nothing to do if it already existed)\n", name)
	return true
}
