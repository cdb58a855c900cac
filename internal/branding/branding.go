// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	CommandName  string `yaml:"command_name"`
	Interpreter  string `yaml:"interpreter"`
	SystemBinDir string `yaml:"system_bin_dir"`
	EntryRelPath string `yaml:"entry_rel_path"`
	GoModule     string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "aligo-install",
			DisplayName:  "Aligo Install",
			Description:  "Installs the aligo command-line wrapper",
			HomeDir:      ".aligo-install",
			EnvPrefix:    "ALIGO_INSTALL",
			CommandName:  "aligo",
			Interpreter:  "python3",
			SystemBinDir: "/usr/local/bin",
			EntryRelPath: "src/aligo/cli.py",
			GoModule:     "github.com/aligo-labs/aligo-install",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "aligo-install").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".aligo-install").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ALIGO_INSTALL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// CommandName returns the default filename for the installed wrapper.
func CommandName() string { load(); return defaults.CommandName }

// Interpreter returns the default interpreter invoked by the wrapper.
func Interpreter() string { load(); return defaults.Interpreter }

// SystemBinDir returns the default system-wide install directory.
func SystemBinDir() string { load(); return defaults.SystemBinDir }

// EntryRelPath returns the entry script path relative to the repository root.
func EntryRelPath() string { load(); return defaults.EntryRelPath }

// GoModule returns the Go module path. Used by scripts — not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("BIN") → "ALIGO_INSTALL_BIN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
