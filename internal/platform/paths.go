package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aligo-labs/aligo-install/internal/branding"
)

// UserBinDir returns the per-user executable directory.
// It checks the ALIGO_INSTALL_BIN environment variable first,
// then falls back to ~/.local/bin.
func UserBinDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("BIN")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".local", "bin"), nil
}

// OnPath reports whether dir is an element of the PATH environment variable.
// Elements are compared after filepath.Clean so trailing separators do not
// cause false negatives.
func OnPath(dir string) bool {
	want := filepath.Clean(dir)
	for _, elem := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if elem == "" {
			continue
		}
		if filepath.Clean(elem) == want {
			return true
		}
	}
	return false
}
