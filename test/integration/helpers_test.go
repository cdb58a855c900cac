//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	EntryPath   string // a real entry script
	Interpreter string // a fake interpreter that records its invocation
	ArgsLog     string // file the fake interpreter writes its argv to
	TargetDir   string // install target (not created up front)
}

// setupTestEnv creates an isolated sandbox: an entry script, a fake
// interpreter that appends its arguments to a log file, and a target dir
// path. HOME is redirected so no real user config leaks in.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("generated wrappers are POSIX shell scripts")
	}

	t.Setenv("HOME", t.TempDir())

	work := t.TempDir()
	env := &testEnv{
		EntryPath:   filepath.Join(work, "entry.py"),
		Interpreter: filepath.Join(work, "python3.fake"),
		ArgsLog:     filepath.Join(work, "argv.log"),
		TargetDir:   filepath.Join(work, "bin"),
	}

	writeFile(t, env.EntryPath, "print('aligo')\n", 0644)
	writeFile(t, env.Interpreter,
		"#!/bin/sh\nprintf '%s\\n' \"$@\" >> '"+env.ArgsLog+"'\n", 0755)

	return env
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected nothing at %s", path)
	}
}
