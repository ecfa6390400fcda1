package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Check validates an initialized project under base against the layout.
// When fix is true, it repairs missing directories, markers, and files.
// Findings are printed to w; the returned count is the number of problems
// that remain after any repairs.
func Check(w io.Writer, l Layout, base string, fix bool) (int, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return 0, fmt.Errorf("resolving base path %s: %w", base, err)
	}

	fmt.Fprintf(w, "Project check at %s:\n", abs)

	problems := 0

	for _, d := range l.Dirs {
		dirPath := filepath.Join(base, filepath.FromSlash(d.Path))
		problems += checkDir(w, dirPath, fix)
		problems += checkFile(w, filepath.Join(dirPath, l.MarkerName), nil, fix)
	}

	stubPath := filepath.Join(base, filepath.FromSlash(l.StubPath))
	problems += checkFile(w, stubPath, l.Stub, fix)

	readmePath := filepath.Join(base, filepath.FromSlash(l.ReadmePath))
	problems += checkFile(w, readmePath, l.Readme, fix)

	if problems == 0 {
		fmt.Fprintln(w, "  All checks passed.")
	}
	return problems, nil
}

// checkDir reports a missing or shadowed directory. Returns 1 if a problem
// remains, 0 otherwise.
func checkDir(w io.Writer, path string, fix bool) int {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, DirPerm); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return 1
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
			return 0
		}
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return 1
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", path)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
	return 0
}

// checkFile reports a missing file and, when fixing, recreates it with the
// given content. Existing files are never rewritten here: doctor repairs
// absence, init owns content.
func checkFile(w io.Writer, path string, content []byte, fix bool) int {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if wrErr := os.WriteFile(path, content, FilePerm); wrErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, wrErr)
				return 1
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
			return 0
		}
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return 1
	}
	if info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s is a directory, expected file\n", path)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
	return 0
}
