package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name string
		make func(path string) error
		mode os.FileMode
	}{
		{
			name: "file",
			make: func(path string) error { return os.WriteFile(path, []byte("x"), 0644) },
			mode: 0600,
		},
		{
			name: "dir",
			make: func(path string) error { return os.MkdirAll(path, 0755) },
			mode: 0700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmp, tt.name)
			if err := tt.make(path); err != nil {
				t.Fatal(err)
			}

			if err := Chmod(path, tt.mode); err != nil {
				t.Fatalf("Chmod failed: %v", err)
			}

			if runtime.GOOS == "windows" {
				return // no-op platform, nothing to assert
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != tt.mode {
				t.Errorf("permissions = %o, want %o", perm, tt.mode)
			}
		})
	}
}
