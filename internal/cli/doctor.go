package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aligo-labs/aligo-install/internal/installer"
	"github.com/aligo-labs/aligo-install/internal/interpreter"
	"github.com/aligo-labs/aligo-install/internal/manifest"
	"github.com/aligo-labs/aligo-install/internal/platform"
	"github.com/spf13/cobra"
)

var (
	checkEntry    bool
	checkPython   bool
	checkTarget   bool
	checkManifest string
	doctorUser    bool
	doctorEntry   string
	doctorPython  string
	doctorTarget  string
	doctorMinPy   string
)

func init() {
	f := doctorCmd.Flags()
	f.BoolVar(&checkEntry, "check-entry", false, "Verify the entry script exists")
	f.BoolVar(&checkPython, "check-python", false, "Verify the interpreter is on PATH")
	f.BoolVar(&checkTarget, "check-target", false, "Verify the target directory state")
	f.StringVar(&checkManifest, "check-manifest", "", "Validate an install manifest at the given path")
	f.BoolVar(&doctorUser, "user", false, "Check the per-user bin directory instead of the system one")
	f.StringVar(&doctorEntry, "entry", "", "Entry script to check (default: resolved like the installer)")
	f.StringVar(&doctorPython, "python", "", "Interpreter to check (default: resolved like the installer)")
	f.StringVar(&doctorTarget, "target", "", "Target directory to check (default: resolved like the installer)")
	f.StringVar(&doctorMinPy, "min-python", "", "Also verify the interpreter version satisfies a semver range")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the install environment",
	Long:  `Run the installer's validations without writing anything and report each outcome.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := doctorOptions()
		if err != nil {
			return fail(err)
		}

		anyFlag := checkEntry || checkPython || checkTarget || checkManifest != ""
		out := cmd.OutOrStdout()
		ok := true

		if !anyFlag || checkEntry {
			ok = reportCheck(out, "entry script", entryCheck(opts)) && ok
		}
		if !anyFlag || checkPython {
			ok = reportCheck(out, "interpreter", pythonCheck(opts)) && ok
		}
		if !anyFlag || checkTarget {
			ok = reportCheck(out, "target dir", targetCheck(opts)) && ok
		}
		if checkManifest != "" {
			ok = reportCheck(out, "manifest", manifestCheck(checkManifest)) && ok
		}

		if !ok {
			return fail(fmt.Errorf("one or more checks failed"))
		}
		return nil
	},
}

// doctorOptions resolves the same option record the installer uses, with the
// doctor's own flag overrides applied on top.
func doctorOptions() (installer.Options, error) {
	opts, err := resolveInstallOptions(rootCmd)
	if err != nil {
		return opts, err
	}
	if doctorEntry != "" {
		opts.EntryPath = doctorEntry
	}
	if doctorPython != "" {
		opts.Interpreter = doctorPython
	}
	if doctorTarget != "" {
		opts.TargetDir = doctorTarget
	}
	if doctorUser {
		opts.UserMode = true
		dir, err := platform.UserBinDir()
		if err != nil {
			return opts, err
		}
		opts.TargetDir = dir
	}
	if doctorMinPy != "" {
		opts.MinPython = doctorMinPy
	}
	if opts.EntryPath == "" {
		entry, err := installer.DefaultEntryPath()
		if err != nil {
			return opts, err
		}
		opts.EntryPath = entry
	}
	return opts, nil
}

// checkResult is one line of doctor output.
type checkResult struct {
	ok     bool
	detail string
}

func reportCheck(out io.Writer, label string, r checkResult) bool {
	status := "OK"
	if !r.ok {
		status = "FAIL"
	}
	fmt.Fprintf(out, "  [%-4s] %-12s %s\n", status, label+":", r.detail)
	return r.ok
}

func entryCheck(opts installer.Options) checkResult {
	if !platform.IsRegularFile(opts.EntryPath) {
		return checkResult{false, fmt.Sprintf("%s not found or not a regular file", opts.EntryPath)}
	}
	return checkResult{true, opts.EntryPath}
}

func pythonCheck(opts installer.Options) checkResult {
	path, err := interpreter.Resolve(opts.Interpreter)
	if err != nil {
		return checkResult{false, err.Error()}
	}
	if opts.MinPython != "" {
		if err := interpreter.CheckConstraint(path, opts.MinPython); err != nil {
			return checkResult{false, err.Error()}
		}
		return checkResult{true, fmt.Sprintf("%s (satisfies %s)", path, opts.MinPython)}
	}
	if v, err := interpreter.DetectVersion(path); err == nil {
		return checkResult{true, fmt.Sprintf("%s (%s)", path, v)}
	}
	return checkResult{true, path}
}

func targetCheck(opts installer.Options) checkResult {
	dir := opts.TargetDir
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return checkResult{true, fmt.Sprintf("%s does not exist yet (will be created)", dir)}
	case err != nil:
		return checkResult{false, fmt.Sprintf("%s: %v", dir, err)}
	case !info.IsDir():
		return checkResult{false, fmt.Sprintf("%s exists but is not a directory", dir)}
	}
	if !platform.OnPath(dir) {
		return checkResult{true, fmt.Sprintf("%s (not on PATH)", dir)}
	}
	return checkResult{true, dir}
}

func manifestCheck(path string) checkResult {
	if _, err := manifest.ParseFile(path); err != nil {
		return checkResult{false, err.Error()}
	}
	return checkResult{true, path}
}
