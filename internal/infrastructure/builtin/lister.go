package builtin

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/doeshing/termsh/internal/domain"
)

// dir lists the current directory. The native listing command is the primary
// path and its output is printed verbatim, non-zero exit included; the
// in-process fallback only runs when the invocation itself fails.
func (t *Table) dir(req Request) bool {
	args := argsAfterKeyword(req.Line)

	var command string
	if t.deps.GOOS == "windows" {
		command = "dir /A /W"
		if args != "" {
			command = fmt.Sprintf("dir %s /A /W", args)
		}
	} else {
		command = "ls -la"
		if args != "" {
			command = fmt.Sprintf("ls -la %s", args)
		}
	}

	if t.deps.Runner != nil {
		outcome := t.deps.Runner.Run(context.Background(), command, t.deps.Timeout)
		if !outcome.Failed() {
			if outcome.Stdout != "" {
				fmt.Fprint(t.deps.Out, outcome.Stdout)
			}
			if outcome.Stderr != "" {
				fmt.Fprint(t.deps.Err, outcome.Stderr)
			}
			return true
		}
		if t.deps.Logger != nil {
			t.deps.Logger.Warn("native listing failed, using fallback", map[string]interface{}{
				"command": command,
				"failure": outcome.Failure.Error(),
			})
		}
	}

	if err := t.fallbackListing(); err != nil {
		fmt.Fprintf(t.deps.Err, "dir: listing failed: %v (native command and fallback both failed)\n", err)
	}
	return true
}

// listEntry is one row of the fallback listing.
type listEntry struct {
	name     string
	modified string
	size     int64
	perm     string
}

// fallbackListing enumerates the current directory directly. Entries that
// cannot be inspected (broken symlinks) are still listed with placeholders.
func (t *Table) fallbackListing() error {
	entries, err := os.ReadDir(".")
	if err != nil {
		return err
	}

	var dirs, files []listEntry
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			placeholder := listEntry{name: entry.Name(), modified: "N/A", size: 0, perm: "--"}
			if entry.IsDir() {
				dirs = append(dirs, placeholder)
			} else {
				files = append(files, placeholder)
			}
			continue
		}
		row := listEntry{
			name:     entry.Name(),
			modified: info.ModTime().Format(domain.ListingTimestampFormat),
			perm:     t.permString(info, entry.IsDir()),
		}
		if entry.IsDir() {
			dirs = append(dirs, row)
		} else {
			row.size = info.Size()
			files = append(files, row)
		}
	}

	byName := func(rows []listEntry) func(i, j int) bool {
		return func(i, j int) bool {
			return strings.ToLower(rows[i].name) < strings.ToLower(rows[j].name)
		}
	}
	sort.Slice(dirs, byName(dirs))
	sort.Slice(files, byName(files))

	out := t.deps.Out
	fmt.Fprintln(out, "\nDirectories:")
	fmt.Fprintf(out, "%-10s %-20s %-40s\n", "Mode", "Modified", "Name")
	fmt.Fprintln(out, strings.Repeat("-", 70))
	for _, row := range dirs {
		fmt.Fprintf(out, "%-10s %-20s %-40s\n", row.perm, row.modified, row.name)
	}

	fmt.Fprintln(out, "\nFiles:")
	fmt.Fprintf(out, "%-10s %-20s %-10s %-40s\n", "Mode", "Modified", "Size", "Name")
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for _, row := range files {
		fmt.Fprintf(out, "%-10s %-20s %-10s %-40s\n", row.perm, row.modified, formatSize(row.size), row.name)
	}

	fmt.Fprintf(out, "\nTotal: %d directories, %d files\n", len(dirs), len(files))
	return nil
}

// permString renders the permission indicator: a full rwx triplet on POSIX,
// a coarse read/write marker on Windows.
func (t *Table) permString(info fs.FileInfo, isDir bool) string {
	mode := info.Mode()
	if t.deps.GOOS == "windows" {
		switch {
		case mode.Perm()&0o200 != 0:
			return "RW"
		case mode.Perm()&0o400 != 0:
			return "R-"
		default:
			return "--"
		}
	}

	var b strings.Builder
	if isDir {
		b.WriteByte('d')
	} else {
		b.WriteByte('-')
	}
	bits := []struct {
		mask fs.FileMode
		char byte
	}{
		{0o400, 'r'}, {0o200, 'w'}, {0o100, 'x'},
		{0o040, 'r'}, {0o020, 'w'}, {0o010, 'x'},
		{0o004, 'r'}, {0o002, 'w'}, {0o001, 'x'},
	}
	for _, bit := range bits {
		if mode.Perm()&bit.mask != 0 {
			b.WriteByte(bit.char)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// formatSize renders a byte count as a human-readable string, two decimal
// places, dividing by 1024 across B, KB, MB, GB, TB and finally PB.
func formatSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.2f PB", value)
}
