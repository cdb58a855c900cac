package installer

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.CommandName != "aligo" {
		t.Errorf("CommandName = %s, want aligo", opts.CommandName)
	}
	if opts.TargetDir != "/usr/local/bin" {
		t.Errorf("TargetDir = %s, want /usr/local/bin", opts.TargetDir)
	}
	if opts.Interpreter != "python3" {
		t.Errorf("Interpreter = %s, want python3", opts.Interpreter)
	}
	if opts.UserMode || opts.Force || opts.DryRun {
		t.Error("boolean options must default to off")
	}
	if opts.EntryPath != "" {
		t.Errorf("EntryPath must default to empty (derived later), got %s", opts.EntryPath)
	}
}

func TestDefaultEntryPath(t *testing.T) {
	entry, err := DefaultEntryPath()
	if err != nil {
		t.Fatalf("DefaultEntryPath: %v", err)
	}
	if !filepath.IsAbs(entry) {
		t.Errorf("expected absolute path, got %s", entry)
	}
	suffix := filepath.FromSlash("src/aligo/cli.py")
	if !strings.HasSuffix(entry, suffix) {
		t.Errorf("expected path ending in %s, got %s", suffix, entry)
	}
}

func TestResolve_UserMode(t *testing.T) {
	userBin := t.TempDir()
	t.Setenv("ALIGO_INSTALL_BIN", userBin)

	opts := Options{
		CommandName: "aligo",
		TargetDir:   "/somewhere/explicit",
		Interpreter: "python3",
		EntryPath:   "/tmp/entry.py",
		UserMode:    true,
	}
	if err := opts.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if opts.TargetDir != userBin {
		t.Errorf("TargetDir = %s, want %s", opts.TargetDir, userBin)
	}
}

func TestResolve_EntryMadeAbsolute(t *testing.T) {
	opts := Options{
		CommandName: "aligo",
		TargetDir:   "/usr/local/bin",
		Interpreter: "python3",
		EntryPath:   "relative/entry.py",
	}
	if err := opts.resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !filepath.IsAbs(opts.EntryPath) {
		t.Errorf("expected absolute entry path, got %s", opts.EntryPath)
	}
}
