package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aligo-labs/aligo-install/internal/branding"
	"github.com/aligo-labs/aligo-install/internal/platform"
)

// Options is the transient configuration record for a single install. It is
// constructed from defaults, overlaid by config/manifest/flag inputs, consumed
// once, and discarded.
type Options struct {
	// CommandName is the filename of the installed wrapper.
	CommandName string
	// TargetDir is the install directory. Overridden by UserMode.
	TargetDir string
	// Interpreter is the executable the wrapper invokes.
	Interpreter string
	// EntryPath is the script passed to the interpreter. Empty means
	// "derive from the installer's own location".
	EntryPath string
	// UserMode forces TargetDir to the per-user bin directory, overriding
	// any explicit target. The override order matters: an explicit target
	// is applied first and UserMode replaces it afterwards.
	UserMode bool
	// Force allows overwriting an existing file at the install path.
	Force bool
	// MinPython, when non-empty, is a semver range the interpreter's
	// reported version must satisfy (e.g., ">= 3.8").
	MinPython string
	// DryRun validates and reports without writing anything.
	DryRun bool
}

// DefaultOptions returns an Options populated with the built-in defaults.
func DefaultOptions() Options {
	return Options{
		CommandName: branding.CommandName(),
		TargetDir:   branding.SystemBinDir(),
		Interpreter: branding.Interpreter(),
	}
}

// resolve fills derived fields: the binary-relative entry path and the
// user-mode target override.
func (o *Options) resolve() error {
	if o.EntryPath == "" {
		entry, err := DefaultEntryPath()
		if err != nil {
			return err
		}
		o.EntryPath = entry
	} else if abs, err := filepath.Abs(o.EntryPath); err == nil {
		o.EntryPath = abs
	}

	if o.UserMode {
		dir, err := platform.UserBinDir()
		if err != nil {
			return err
		}
		o.TargetDir = dir
	}
	return nil
}

// DefaultEntryPath derives the entry script location from the installer's own
// executable so the tool works regardless of the current working directory.
// It probes the executable's directory first, then its parent, covering both
// a binary at the repository root and one under bin/.
func DefaultEntryPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating installer executable: %w", err)
	}
	exeDir := filepath.Dir(exe)

	rel := filepath.FromSlash(branding.EntryRelPath())
	candidates := []string{
		filepath.Join(exeDir, rel),
		filepath.Join(exeDir, "..", rel),
	}
	for _, c := range candidates {
		if platform.IsRegularFile(c) {
			return filepath.Clean(c), nil
		}
	}
	// Fall back to the first candidate; validation reports it as missing.
	return filepath.Clean(candidates[0]), nil
}
