package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse validates raw YAML bytes and decodes them into an InstallManifest.
// Schema violations are returned as a single error listing every issue.
func Parse(data []byte) (*InstallManifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		var b strings.Builder
		b.WriteString("invalid install manifest:")
		for _, issue := range result.Issues {
			b.WriteString(fmt.Sprintf("\n  %s: %s", issue.Path, issue.Message))
		}
		return nil, fmt.Errorf("%s", b.String())
	}

	var m InstallManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding install manifest: %w", err)
	}
	return &m, nil
}

// ParseFile reads and parses an install manifest from disk.
func ParseFile(path string) (*InstallManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data)
}
