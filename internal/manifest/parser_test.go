package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_FullManifest(t *testing.T) {
	data := []byte(`name: aligo
target: /opt/tools/bin
python: python3.11
entry: /opt/aligo/src/aligo/cli.py
min_python: ">= 3.8"
user: false
force: true
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if m.Name != "aligo" {
		t.Errorf("Name = %s, want aligo", m.Name)
	}
	if m.Target != "/opt/tools/bin" {
		t.Errorf("Target = %s, want /opt/tools/bin", m.Target)
	}
	if m.Python != "python3.11" {
		t.Errorf("Python = %s, want python3.11", m.Python)
	}
	if m.MinPython != ">= 3.8" {
		t.Errorf("MinPython = %s, want >= 3.8", m.MinPython)
	}
	if m.User == nil || *m.User {
		t.Error("expected user: false to decode as explicit false")
	}
	if m.Force == nil || !*m.Force {
		t.Error("expected force: true to decode as explicit true")
	}
}

func TestParse_MinimalManifest(t *testing.T) {
	m, err := Parse([]byte("name: mytool\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Name != "mytool" {
		t.Errorf("Name = %s, want mytool", m.Name)
	}
	if m.User != nil || m.Force != nil {
		t.Error("unset booleans must stay nil so defaults apply")
	}
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("name: aligo\nuninstall: true\n"))
	if err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
	if !strings.Contains(err.Error(), "invalid install manifest") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_RejectsWrongType(t *testing.T) {
	if _, err := Parse([]byte("user: maybe\n")); err == nil {
		t.Error("expected non-boolean user to be rejected")
	}
	if _, err := Parse([]byte("name: ''\n")); err == nil {
		t.Error("expected empty name to be rejected")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.yaml")
	if err := os.WriteFile(path, []byte("name: aligo\ntarget: /tmp/bin\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if m.Target != "/tmp/bin" {
		t.Errorf("Target = %s, want /tmp/bin", m.Target)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing manifest file")
	}
}
