package builtin

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// cp copies a file, preserving its mode and modification time. The
// destination may contain spaces when quoted; a destination that is an
// existing directory receives the source's base name.
func (t *Table) cp(req Request) bool {
	args := argsAfterKeyword(req.Line)
	src, dst := splitCopyArgs(args)
	if src == "" || dst == "" {
		fmt.Fprintln(t.deps.Err, "cp: source and destination required (example: cp test.txt ./backup/)")
		return true
	}

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(t.deps.Err, "cp: source %q not found\n", src)
		} else if errors.Is(err, fs.ErrPermission) {
			fmt.Fprintf(t.deps.Err, "cp: permission denied reading %q\n", src)
		} else {
			fmt.Fprintf(t.deps.Err, "cp: %v\n", err)
		}
		return true
	}
	if !info.Mode().IsRegular() {
		fmt.Fprintf(t.deps.Err, "cp: source %q is not a regular file\n", src)
		return true
	}

	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	if err := copyFile(src, dst, info); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			fmt.Fprintln(t.deps.Err, "cp: permission denied")
		} else {
			fmt.Fprintf(t.deps.Err, "cp: copy failed: %v\n", err)
		}
		return true
	}
	fmt.Fprintf(t.deps.Out, "Copied %q to %q\n", src, dst)
	return true
}

// copyFile writes dst from src and carries over the source's permission bits
// and modification timestamp.
func copyFile(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// splitCopyArgs yields the first whitespace token as the source and the
// remainder as the destination, each stripped of one quote layer.
func splitCopyArgs(args string) (src, dst string) {
	trimmed := strings.TrimSpace(args)
	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return unquote(trimmed), ""
	}
	return unquote(trimmed[:idx]), unquote(strings.TrimSpace(trimmed[idx:]))
}
