package interpreter

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeFakeBin creates an executable shell script in dir and returns its path.
func writeFakeBin(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes are not runnable on windows")
	}

	bin := t.TempDir()
	want := writeFakeBin(t, bin, "python3.99", "exit 0")
	t.Setenv("PATH", bin)

	got, err := Resolve("python3.99")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Errorf("Resolve = %s, want %s", got, want)
	}
}

func TestResolve_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Resolve("definitely-not-an-interpreter")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolve_AbsolutePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes are not runnable on windows")
	}

	bin := writeFakeBin(t, t.TempDir(), "py", "exit 0")
	got, err := Resolve(bin)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != bin {
		t.Errorf("Resolve = %s, want %s", got, bin)
	}
}
