package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scproj-labs/scproj/internal/branding"
	"github.com/scproj-labs/scproj/internal/platform"
)

// Apply materializes the layout under base, printing progress to w.
// Directories and markers that already exist are skipped with a message;
// the README is rewritten unconditionally. The first filesystem error
// aborts the run. No rollback is attempted: artifacts created before the
// failure remain on disk.
func Apply(l Layout, base string, w io.Writer) error {
	abs, err := filepath.Abs(base)
	if err != nil {
		return fmt.Errorf("resolving base path %s: %w", base, err)
	}

	banner(w)
	fmt.Fprintf(w, "%s - Project Setup\n", branding.ProjectTitle())
	banner(w)
	fmt.Fprintf(w, "\nCreating structure at: %s\n\n", abs)

	for _, d := range l.Dirs {
		dirPath := filepath.Join(base, filepath.FromSlash(d.Path))
		if err := ensureDir(w, dirPath, DirPerm); err != nil {
			return err
		}
		if err := ensureMarker(w, filepath.Join(dirPath, l.MarkerName)); err != nil {
			return err
		}
	}

	stubPath := filepath.Join(base, filepath.FromSlash(l.StubPath))
	if err := ensureFile(w, stubPath, l.Stub, FilePerm); err != nil {
		return err
	}

	readmePath := filepath.Join(base, filepath.FromSlash(l.ReadmePath))
	if err := writeFile(w, readmePath, l.Readme, FilePerm); err != nil {
		return err
	}

	fmt.Fprintln(w)
	banner(w)
	fmt.Fprintln(w, "Project structure created successfully.")
	banner(w)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Download %s from GEO into data/raw/\n", branding.DatasetAccession())
	fmt.Fprintln(w, "  2. Run the QC notebook: notebooks/01_QC.ipynb")
	fmt.Fprintln(w, "  3. Review results in results/figures/")

	return nil
}

func banner(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureMarker creates a zero-byte marker file if it doesn't exist. An
// existing marker is never truncated.
func ensureMarker(w io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, nil, FilePerm); err != nil {
		return fmt.Errorf("creating marker %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist. Existing
// content is left untouched.
func ensureFile(w io.Writer, path string, content []byte, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// writeFile writes a file unconditionally, replacing any prior content.
func writeFile(w io.Writer, path string, content []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Wrote %s\n", path)
	return nil
}
