package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aligo-labs/aligo-install/internal/interpreter"
	"github.com/aligo-labs/aligo-install/internal/platform"
)

// Result describes a completed (or, for dry runs, simulated) install.
type Result struct {
	// Path is the final install path, TargetDir/CommandName.
	Path string
	// Interpreter is the resolved absolute interpreter path.
	Interpreter string
	// EntryPath is the resolved entry script path.
	EntryPath string
	// UserBin is true when the target directory is the per-user bin dir.
	UserBin bool
	// DryRun is true when nothing was written.
	DryRun bool
}

// Install validates the environment described by opts and writes the wrapper.
// Validation order is fixed: entry file, interpreter, optional version gate,
// then the target path. No filesystem change happens before all validations
// pass, so a failed invocation leaves no partial state behind.
func Install(opts Options) (*Result, error) {
	if err := opts.resolve(); err != nil {
		return nil, err
	}

	if !platform.IsRegularFile(opts.EntryPath) {
		return nil, fmt.Errorf("%w: %s", ErrMissingEntryFile, opts.EntryPath)
	}

	interpPath, err := interpreter.Resolve(opts.Interpreter)
	if err != nil {
		return nil, fmt.Errorf("%w: %q not resolvable on PATH", ErrMissingInterpreter, opts.Interpreter)
	}

	// The only step that runs the interpreter; skipped unless requested.
	if opts.MinPython != "" {
		if err := interpreter.CheckConstraint(interpPath, opts.MinPython); err != nil {
			return nil, err
		}
	}

	installPath := filepath.Join(opts.TargetDir, opts.CommandName)

	result := &Result{
		Path:        installPath,
		Interpreter: interpPath,
		EntryPath:   opts.EntryPath,
		UserBin:     opts.UserMode,
		DryRun:      opts.DryRun,
	}

	if _, err := os.Stat(installPath); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w at %s; pass --force to overwrite", ErrTargetExists, installPath)
	}

	if opts.DryRun {
		return result, nil
	}

	if err := os.MkdirAll(opts.TargetDir, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory %s: %w", opts.TargetDir, err)
	}

	shim, err := renderShim(interpPath, opts.EntryPath)
	if err != nil {
		return nil, fmt.Errorf("rendering wrapper script: %w", err)
	}

	if err := os.WriteFile(installPath, shim, 0755); err != nil {
		return nil, fmt.Errorf("writing wrapper %s: %w", installPath, err)
	}
	// WriteFile's mode is masked by umask; chmod makes 0755 unconditional.
	if err := platform.Chmod(installPath, 0755); err != nil {
		return nil, fmt.Errorf("marking wrapper executable: %w", err)
	}

	return result, nil
}
