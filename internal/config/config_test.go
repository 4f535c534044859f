package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingDefaultPath(t *testing.T) {
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer func() {
		_ = os.Chdir(cwd)
	}()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `[dedup]
enabled = true
similarity_threshold = 0.9
time_window_seconds = 15.0
aggressive = true

[output]
dir = "./results"
save = false
quiet = true
`
	path := filepath.Join(t.TempDir(), "subgrep.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Dedup.SimilarityThreshold != 0.9 {
		t.Errorf("threshold: got %g", cfg.Dedup.SimilarityThreshold)
	}
	if cfg.Dedup.TimeWindowSeconds != 15.0 {
		t.Errorf("window: got %g", cfg.Dedup.TimeWindowSeconds)
	}
	if !cfg.Dedup.Aggressive {
		t.Error("aggressive not set")
	}
	if cfg.Output.Dir != "./results" || cfg.Output.Save || !cfg.Output.Quiet {
		t.Errorf("output: got %+v", cfg.Output)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	content := `[dedup]
similarity_threshold = 0.95
`
	path := filepath.Join(t.TempDir(), "subgrep.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Dedup.SimilarityThreshold != 0.95 {
		t.Errorf("threshold: got %g", cfg.Dedup.SimilarityThreshold)
	}
	if cfg.Dedup.TimeWindowSeconds != 5.0 {
		t.Errorf("window default lost: got %g", cfg.Dedup.TimeWindowSeconds)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("output dir default lost: got %q", cfg.Output.Dir)
	}
}

func TestLoadInvalidThreshold(t *testing.T) {
	content := `[dedup]
similarity_threshold = 1.5
`
	path := filepath.Join(t.TempDir(), "subgrep.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "similarity threshold") {
		t.Errorf("unexpected error: %v", err)
	}
}
