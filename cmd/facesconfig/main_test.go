package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<faces-config xmlns="http://xmlns.jcp.org/xml/ns/javaee" version="2.2">
  <navigation-rule>
    <from-view-id>/a.xhtml</from-view-id>
    <navigation-case>
      <from-outcome>next</from-outcome>
      <to-view-id>/b.xhtml</to-view-id>
    </navigation-case>
  </navigation-rule>
  <application id="main">
    <message-bundle>com.example.messages</message-bundle>
  </application>
</faces-config>
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = runWithArgs(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVersionCommand(t *testing.T) {
	path := writeFile(t, "faces-config.xml", sampleDoc)
	code, stdout, stderr := runCLI(t, "version", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if stdout != "2.2\n" {
		t.Fatalf("stdout = %q, want %q", stdout, "2.2\n")
	}
}

func TestTreeCommand(t *testing.T) {
	path := writeFile(t, "faces-config.xml", sampleDoc)
	code, stdout, stderr := runCLI(t, "tree", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	want := "faces-config\n  navigation-rule\n    navigation-case\n  application #main\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestCheckCommand(t *testing.T) {
	clean := writeFile(t, "clean.xml", sampleDoc)
	code, stdout, stderr := runCLI(t, "check", clean)
	if code != 0 {
		t.Fatalf("clean: exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "conforms to faces-config 2.2") {
		t.Fatalf("clean: stdout = %q", stdout)
	}

	foreign := strings.Replace(sampleDoc, "<application id=\"main\">", "<application id=\"main\">\n    <vendor:hint xmlns:vendor=\"urn:vendor\"/>", 1)
	dirty := writeFile(t, "dirty.xml", foreign)
	code, _, stderr = runCLI(t, "check", dirty)
	if code != 1 {
		t.Fatalf("dirty: exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "faces-foreign-element") || !strings.Contains(stderr, "1 foreign element(s)") {
		t.Fatalf("dirty: stderr = %q", stderr)
	}
}

func TestNormalizeCommand(t *testing.T) {
	path := writeFile(t, "faces-config.xml", sampleDoc)
	out := filepath.Join(t.TempDir(), "out.xml")
	code, stdout, stderr := runCLI(t, "normalize", path, "-o", out)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty with -o", stdout)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(b)
	app := strings.Index(got, "<application")
	rule := strings.Index(got, "<navigation-rule")
	if app < 0 || rule < 0 || app > rule {
		t.Fatalf("application not moved before navigation-rule:\n%s", got)
	}

	code, stdout, _ = runCLI(t, "normalize", out)
	if code != 0 || stdout != got {
		t.Fatalf("normalize is not idempotent: code = %d\n%s", code, stdout)
	}
}

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{
			name: "default",
			args: []string{"new"},
			want: `version="4.0"`,
		},
		{
			name: "flag",
			args: []string{"new", "--version", "2.0"},
			want: `version="2.0"`,
		},
		{
			name: "environment",
			args: []string{"new"},
			env:  map[string]string{"FACESCONFIG_DEFAULT_VERSION": "2.3"},
			want: `version="2.3"`,
		},
		{
			name: "dtd",
			args: []string{"new", "--version", "1.1"},
			want: "<!DOCTYPE faces-config PUBLIC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr = %q", code, stderr)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Fatalf("stdout = %q, want it to contain %q", stdout, tt.want)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "facesconfig.yaml", "default-version: \"1.2\"\nlog-level: debug\n")
	code, stdout, stderr := runCLI(t, "--config", cfg, "new")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, `version="1.2"`) {
		t.Fatalf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "configuration loaded") {
		t.Fatalf("debug log missing from stderr: %q", stderr)
	}

	code, _, stderr = runCLI(t, "--config", cfg, "--log-level", "error", "new")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if stderr != "" {
		t.Fatalf("flag did not override config log level: %q", stderr)
	}
}

func TestErrors(t *testing.T) {
	bad := writeFile(t, "bad.xml", "<web-app/>")
	invalidCfg := writeFile(t, "bad.yaml", "undo-limit: -1\n")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing file", args: []string{"tree", filepath.Join(t.TempDir(), "missing.xml")}, want: "error:"},
		{name: "unexpected root", args: []string{"tree", bad}, want: "faces-unexpected-root"},
		{name: "unknown version", args: []string{"new", "--version", "9.9"}, want: "unknown faces-config version"},
		{name: "bad log level", args: []string{"--log-level", "loud", "new"}, want: "log level"},
		{name: "negative undo limit", args: []string{"--config", invalidCfg, "new"}, want: "undo-limit"},
		{name: "missing argument", args: []string{"tree"}, want: "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Fatalf("stderr = %q, want it to contain %q", stderr, tt.want)
			}
		})
	}
}
