package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRoot(t *testing.T) {
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".local", "share", "autoenv")
	got := DefaultRoot()
	if got != want {
		t.Errorf("DefaultRoot() = %q, want %q", got, want)
	}
}

func TestLoadCreatesDefault(t *testing.T) {
	tmp := t.TempDir()
	cfg, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", tmp, err)
	}
	if cfg.EnvName != "workbench" {
		t.Errorf("EnvName = %q, want %q", cfg.EnvName, "workbench")
	}
	if cfg.PythonVersion != "3.11" {
		t.Errorf("PythonVersion = %q, want %q", cfg.PythonVersion, "3.11")
	}
	if cfg.SamplesDir != filepath.Join(tmp, "cwe_samples") {
		t.Errorf("SamplesDir = %q, want %q", cfg.SamplesDir, filepath.Join(tmp, "cwe_samples"))
	}
}

func TestLoadReadsExisting(t *testing.T) {
	tmp := t.TempDir()
	toml := `env_name = "scanlab"` + "\n"
	if err := os.WriteFile(filepath.Join(tmp, "config.toml"), []byte(toml), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.EnvName != "scanlab" {
		t.Errorf("EnvName = %q, want %q", cfg.EnvName, "scanlab")
	}
	if cfg.PythonVersion != "3.11" {
		t.Errorf("PythonVersion = %q, want default %q", cfg.PythonVersion, "3.11")
	}
}

func TestLoadNotifyDefault(t *testing.T) {
	tmp := t.TempDir()
	cfg, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Notify {
		t.Error("Notify should default to false")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	cfg, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	cfg.CondaPath = "/opt/conda/bin/conda"
	cfg.Notify = true
	if err := cfg.Save(tmp); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load(tmp)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if got.CondaPath != "/opt/conda/bin/conda" {
		t.Errorf("CondaPath = %q after reload", got.CondaPath)
	}
	if !got.Notify {
		t.Error("Notify should survive a round trip")
	}
}
