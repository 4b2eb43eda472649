package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestFindConfigFileWithEnvVar tests TEXTFINDER_CONFIG takes precedence
func TestFindConfigFileWithEnvVar(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, custom)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".textfinder.yaml"), []byte("regex: x\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if got := FindConfigFile(dir); got != custom {
		t.Errorf("FindConfigFile() = %q, want %q (env var should take precedence)", got, custom)
	}
}

// TestFindConfigFileWalksUp tests discovery in parent directories
func TestFindConfigFileWalksUp(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	want := filepath.Join(root, "a", ".textfinder.toml")
	if err := os.WriteFile(want, []byte("regex = \"x\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if got := FindConfigFile(nested); got != want {
		t.Errorf("FindConfigFile() = %q, want %q", got, want)
	}
}

// TestFindConfigFilePrefersYAML tests the name priority within one directory
func TestFindConfigFilePrefersYAML(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	dir := t.TempDir()
	for _, name := range []string{".textfinder.toml", ".textfinder.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	want := filepath.Join(dir, ".textfinder.yaml")
	if got := FindConfigFile(dir); got != want {
		t.Errorf("FindConfigFile() = %q, want %q", got, want)
	}
}

// TestFindConfigFileIgnoresDirectories tests that a directory with a config name is skipped
func TestFindConfigFileIgnoresDirectories(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".textfinder.yaml"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	got := FindConfigFile(dir)
	if got == filepath.Join(dir, ".textfinder.yaml") {
		t.Errorf("FindConfigFile() returned a directory: %q", got)
	}
}
