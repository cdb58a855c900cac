package interpreter

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRe matches the numeric part of `Python 3.11.4` style banners.
var versionRe = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// DetectVersion runs `<bin> --version` and parses the reported version.
// Python 2 printed the banner on stderr, so both streams are inspected.
func DetectVersion(bin string) (*semver.Version, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s --version: %w", bin, err)
	}

	banner := strings.TrimSpace(stdout.String())
	if banner == "" {
		banner = strings.TrimSpace(stderr.String())
	}
	return parseVersionBanner(banner)
}

// parseVersionBanner extracts a semver version from a `--version` banner.
func parseVersionBanner(banner string) (*semver.Version, error) {
	m := versionRe.FindString(banner)
	if m == "" {
		return nil, fmt.Errorf("cannot parse interpreter version from %q", banner)
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil, fmt.Errorf("parsing interpreter version %q: %w", m, err)
	}
	return v, nil
}

// CheckConstraint verifies that the interpreter at bin satisfies the given
// semver range constraint (e.g., ">= 3.8").
func CheckConstraint(bin, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	v, err := DetectVersion(bin)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("interpreter %s reports version %s, which does not satisfy %q", bin, v, constraint)
	}
	return nil
}
