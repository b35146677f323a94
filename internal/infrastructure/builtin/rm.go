package builtin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// riskyDeleteFragments are the rm sub-patterns that keep their confirmation
// prompt even under auto-confirm; the flag answers the prompt, it never
// skips it silently.
var riskyDeleteFragments = []string{"-rf", "-r *", "rd /s", "rmdir /s"}

// rm deletes a file or directory. Directory mode is selected when the target
// already is a directory or a literal -r token is present. A missing target
// is reported before any confirmation prompt is shown.
func (t *Table) rm(req Request) bool {
	args := argsAfterKeyword(req.Line)
	if args == "" {
		fmt.Fprintln(t.deps.Err, "rm: missing target (example: rm test.txt or rm -r test_dir)")
		return true
	}

	recursive, target := splitDeleteArgs(args)
	if target == "" {
		fmt.Fprintln(t.deps.Err, "rm: missing target (example: rm test.txt or rm -r test_dir)")
		return true
	}

	info, statErr := os.Stat(target)
	dirMode := (statErr == nil && info.IsDir()) || recursive

	if statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			if dirMode {
				fmt.Fprintf(t.deps.Err, "rm: directory %q not found (check the path and casing)\n", target)
			} else {
				fmt.Fprintf(t.deps.Err, "rm: file %q not found (check the path and casing)\n", target)
			}
			return true
		}
		fmt.Fprintf(t.deps.Err, "rm: cannot inspect %q: %v\n", target, statErr)
		return true
	}

	question := fmt.Sprintf("Permanently delete %q? (y/N) ", target)
	if dirMode {
		question = fmt.Sprintf("Permanently delete directory %q and all of its contents? (y/N) ", target)
	}
	if isRiskyDelete(req.Line) {
		question = fmt.Sprintf("High-risk delete detected: %q. Data cannot be recovered. Continue? (y/N) ", strings.TrimSpace(req.Line))
	}

	confirmed, err := t.confirmDelete(question, target, req.AutoConfirm)
	if err != nil {
		fmt.Fprintf(t.deps.Err, "rm: confirmation failed: %v\n", err)
		return true
	}
	if !confirmed {
		fmt.Fprintln(t.deps.Out, "Deletion cancelled")
		return true
	}

	var removeErr error
	if dirMode {
		removeErr = os.RemoveAll(target)
	} else {
		removeErr = os.Remove(target)
	}
	if removeErr != nil {
		if errors.Is(removeErr, fs.ErrPermission) {
			fmt.Fprintf(t.deps.Err, "rm: permission denied deleting %q\n", target)
		} else {
			fmt.Fprintf(t.deps.Err, "rm: failed to delete %q: %v\n", target, removeErr)
		}
		return true
	}
	fmt.Fprintf(t.deps.Out, "Deleted %q\n", target)
	return true
}

// confirmDelete asks the deletion question. Auto-confirm answers it with a
// visible notice instead of suppressing the prompt.
func (t *Table) confirmDelete(question, target string, autoConfirm bool) (bool, error) {
	if autoConfirm {
		fmt.Fprintf(t.deps.Out, "Auto-confirmed deletion of %q\n", target)
		return true, nil
	}
	if t.deps.Prompter == nil {
		return false, fmt.Errorf("no interactive prompter available")
	}
	return t.deps.Prompter.Confirm(question)
}

// splitDeleteArgs separates flag tokens from the target. Only a literal -r
// (or -rf) token selects recursion; the remaining tokens form the target.
func splitDeleteArgs(args string) (recursive bool, target string) {
	var rest []string
	for _, token := range strings.Fields(args) {
		switch token {
		case "-r", "-rf", "-fr":
			recursive = true
		case "-f":
			// force flag carries no meaning here beyond the risk check
		default:
			rest = append(rest, token)
		}
	}
	return recursive, unquote(strings.Join(rest, " "))
}

func isRiskyDelete(line string) bool {
	lowered := strings.ToLower(line)
	for _, fragment := range riskyDeleteFragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}
