package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/aligo-labs/aligo-install/internal/branding"
	"github.com/aligo-labs/aligo-install/internal/config"
	"github.com/aligo-labs/aligo-install/internal/installer"
	"github.com/aligo-labs/aligo-install/internal/manifest"
	"github.com/aligo-labs/aligo-install/internal/platform"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	installName      string
	installTarget    string
	installPython    string
	installEntry     string
	installUser      bool
	installForce     bool
	installManifest  string
	installMinPython string
	installDryRun    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes a thin executable wrapper that forwards invocations to the
aligo entry script via the configured interpreter. It validates the entry
file and interpreter, creates the target directory if needed, and refuses to
overwrite an existing wrapper unless --force is given.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInstall,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&installName, "name", branding.CommandName(), "Wrapper filename")
	f.StringVar(&installTarget, "target", branding.SystemBinDir(), "Install directory (overridden by --user)")
	f.StringVar(&installPython, "python", branding.Interpreter(), "Interpreter invoked by the wrapper")
	f.StringVar(&installEntry, "entry", "", "Script passed to the interpreter (default: "+branding.EntryRelPath()+" next to the installer)")
	f.BoolVar(&installUser, "user", false, "Install to the per-user bin directory (~/.local/bin)")
	f.BoolVar(&installForce, "force", false, "Overwrite an existing wrapper")
	f.StringVar(&installManifest, "manifest", "", "Load install options from a YAML manifest")
	f.StringVar(&installMinPython, "min-python", "", "Require the interpreter version to satisfy a semver range, e.g. '>= 3.8'")
	f.BoolVar(&installDryRun, "dry-run", false, "Validate and report without writing anything")
}

// exitError carries an explicit process exit code through cobra's error path.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// fail wraps a domain or filesystem error so Execute exits with code 1.
func fail(err error) error {
	return &exitError{code: 1, err: err}
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintf(os.Stderr, "error: %v\n", ee.err)
		return ee.code
	}

	// Anything cobra rejected before a command ran: unknown flags,
	// unknown subcommands, bad arguments.
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	fmt.Fprint(os.Stderr, rootCmd.UsageString())
	return 2
}

// runInstall resolves the option record (builtin < config < manifest < flags)
// and performs the install.
func runInstall(cmd *cobra.Command, args []string) error {
	opts, err := resolveInstallOptions(cmd)
	if err != nil {
		return fail(err)
	}

	result, err := installer.Install(opts)
	if err != nil {
		return fail(err)
	}

	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprintf(out, "Would install %s (interpreter: %s, entry: %s)\n", result.Path, result.Interpreter, result.EntryPath)
		return nil
	}

	fmt.Fprintf(out, "Installed %s\n", result.Path)
	if result.UserBin || !platform.OnPath(opts.TargetDir) {
		fmt.Fprintf(os.Stderr, "Make sure %s is on your PATH.\n", opts.TargetDir)
	}
	return nil
}

// resolveInstallOptions layers config-file values, an optional manifest, and
// explicitly set flags over the built-in defaults.
func resolveInstallOptions(cmd *cobra.Command) (installer.Options, error) {
	config.Load()
	opts := installer.DefaultOptions()

	if v := config.Get(config.KeyName); v != "" {
		opts.CommandName = v
	}
	if v := config.Get(config.KeyTarget); v != "" {
		opts.TargetDir = v
	}
	if v := config.Get(config.KeyPython); v != "" {
		opts.Interpreter = v
	}
	if v := config.Get(config.KeyEntry); v != "" {
		opts.EntryPath = v
	}

	if installManifest != "" {
		m, err := manifest.ParseFile(installManifest)
		if err != nil {
			return opts, err
		}
		applyManifest(&opts, m)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		opts.CommandName = installName
	}
	if flags.Changed("target") {
		opts.TargetDir = installTarget
	}
	if flags.Changed("python") {
		opts.Interpreter = installPython
	}
	if flags.Changed("entry") {
		opts.EntryPath = installEntry
	}
	if flags.Changed("user") {
		opts.UserMode = installUser
	}
	if flags.Changed("force") {
		opts.Force = installForce
	}
	if flags.Changed("min-python") {
		opts.MinPython = installMinPython
	}
	opts.DryRun = installDryRun

	// --user deliberately wins over an explicit --target; make the
	// override visible instead of silent.
	if opts.UserMode && flags.Changed("target") {
		fmt.Fprintf(os.Stderr, "warning: --user overrides --target %s\n", installTarget)
	}

	return opts, nil
}

// applyManifest overlays non-empty manifest fields onto opts.
func applyManifest(opts *installer.Options, m *manifest.InstallManifest) {
	if m.Name != "" {
		opts.CommandName = m.Name
	}
	if m.Target != "" {
		opts.TargetDir = m.Target
	}
	if m.Python != "" {
		opts.Interpreter = m.Python
	}
	if m.Entry != "" {
		opts.EntryPath = m.Entry
	}
	if m.MinPython != "" {
		opts.MinPython = m.MinPython
	}
	if m.User != nil {
		opts.UserMode = *m.User
	}
	if m.Force != nil {
		opts.Force = *m.Force
	}
}
