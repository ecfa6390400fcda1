package scaffold

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestApply_CreatesStructure(t *testing.T) {
	tmp := t.TempDir()

	var buf bytes.Buffer
	if err := Apply(DefaultLayout(), tmp, &buf); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	for _, dir := range []string{
		"data/raw", "data/processed", "notebooks",
		"results/figures", "results/tables", "src",
	} {
		assertDirExists(t, filepath.Join(tmp, filepath.FromSlash(dir)))
		assertZeroByteFile(t, filepath.Join(tmp, filepath.FromSlash(dir), MarkerName))
	}

	assertFileExists(t, filepath.Join(tmp, "src", StubName))
	assertFileExists(t, filepath.Join(tmp, ReadmeName))

	output := buf.String()
	if !strings.Contains(output, "[ OK ]") {
		t.Error("expected [ OK ] in output")
	}
	if !strings.Contains(output, "Project structure created successfully.") {
		t.Error("expected completion banner in output")
	}
	if !strings.Contains(output, "Next steps:") {
		t.Error("expected next-steps guidance in output")
	}
}

func TestApply_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	var buf1 bytes.Buffer
	if err := Apply(DefaultLayout(), tmp, &buf1); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}

	// Run again — should succeed with SKIP messages.
	var buf2 bytes.Buffer
	if err := Apply(DefaultLayout(), tmp, &buf2); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}

	output := buf2.String()
	if !strings.Contains(output, "[SKIP]") {
		t.Error("expected [SKIP] messages in second run")
	}

	for _, dir := range []string{
		"data/raw", "data/processed", "notebooks",
		"results/figures", "results/tables", "src",
	} {
		assertZeroByteFile(t, filepath.Join(tmp, filepath.FromSlash(dir), MarkerName))
	}
}

func TestApply_PreservesExistingStub(t *testing.T) {
	tmp := t.TempDir()
	custom := "# custom helper code\n"

	if err := os.MkdirAll(filepath.Join(tmp, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	stubPath := filepath.Join(tmp, "src", StubName)
	if err := os.WriteFile(stubPath, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Apply(DefaultLayout(), tmp, &buf); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	data, err := os.ReadFile(stubPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Errorf("stub content changed: got %q, want %q", data, custom)
	}
}

func TestApply_OverwritesReadme(t *testing.T) {
	tmp := t.TempDir()
	readmePath := filepath.Join(tmp, ReadmeName)

	if err := os.WriteFile(readmePath, []byte("stale content"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Apply(DefaultLayout(), tmp, &buf); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	first, err := os.ReadFile(readmePath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, readmeBytes) {
		t.Error("README was not replaced with the fixed template")
	}

	// A second run reproduces the exact same bytes.
	if err := Apply(DefaultLayout(), tmp, &buf); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	second, err := os.ReadFile(readmePath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("README content differs between runs")
	}
}

func TestApply_ExactFileSet(t *testing.T) {
	tmp := t.TempDir()

	var buf bytes.Buffer
	if err := Apply(DefaultLayout(), tmp, &buf); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	var files []string
	err := filepath.WalkDir(tmp, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(tmp, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking tree: %v", err)
	}
	sort.Strings(files)

	want := []string{
		"README.md",
		"data/processed/.gitkeep",
		"data/raw/.gitkeep",
		"notebooks/.gitkeep",
		"results/figures/.gitkeep",
		"results/tables/.gitkeep",
		"src/.gitkeep",
		"src/__init__.py",
	}
	if len(files) != len(want) {
		t.Fatalf("file set = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("file[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestApply_ExistingNonEmptyDir(t *testing.T) {
	tmp := t.TempDir()

	rawDir := filepath.Join(tmp, "data", "raw")
	if err := os.MkdirAll(rawDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(rawDir, "counts.mtx"), []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Apply(DefaultLayout(), tmp, &buf); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	assertZeroByteFile(t, filepath.Join(rawDir, MarkerName))
	assertFileExists(t, filepath.Join(rawDir, "counts.mtx"))
}

func TestApply_FileCollision(t *testing.T) {
	tmp := t.TempDir()

	// A regular file where a directory should go.
	if err := os.WriteFile(filepath.Join(tmp, "notebooks"), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := Apply(DefaultLayout(), tmp, &buf)
	if err == nil {
		t.Fatal("expected error for file/directory collision, got nil")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("unexpected error: %v", err)
	}
}

// Helpers

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("directory %s does not exist: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file %s does not exist: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("%s is a directory, expected file", path)
	}
}

func assertZeroByteFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file %s does not exist: %v", path, err)
	}
	if info.Size() != 0 {
		t.Errorf("%s has size %d, want 0", path, info.Size())
	}
}
