package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != ModeDirect {
		t.Fatalf("default mode")
	}
	if cfg.Backend != BackendZerolog {
		t.Fatalf("default backend")
	}
	if len(cfg.Networks) != 3 {
		t.Fatalf("default networks")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "zeam.json")
	data := []byte(`{"mode":"bridge","backend":"charm","networks":[1,5],"module":"net"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeBridge {
		t.Fatalf("expected bridge")
	}
	if cfg.Backend != BackendCharm {
		t.Fatalf("expected charm")
	}
	if len(cfg.Networks) != 2 || cfg.Networks[1] != 5 {
		t.Fatalf("networks: %v", cfg.Networks)
	}
	if cfg.Module != "net" {
		t.Fatalf("module: %q", cfg.Module)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "zeam.yaml")
	data := []byte("mode: bridge\nbackend: zerolog\nnetworks: [0, 2]\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeBridge {
		t.Fatalf("expected bridge")
	}
	if len(cfg.Networks) != 2 || cfg.Networks[1] != 2 {
		t.Fatalf("networks: %v", cfg.Networks)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "zeam.json")
	if err := os.WriteFile(file, []byte(`{"mode":"tee"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected mode error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("ZEAM_MODE", "bridge")
	os.Setenv("ZEAM_BACKEND", "charm")
	os.Setenv("ZEAM_NETWORKS", "2, 7,9")
	os.Setenv("ZEAM_MODULE", "sync")
	t.Cleanup(func() {
		os.Unsetenv("ZEAM_MODE")
		os.Unsetenv("ZEAM_BACKEND")
		os.Unsetenv("ZEAM_NETWORKS")
		os.Unsetenv("ZEAM_MODULE")
	})
	FromEnv(&cfg)
	if cfg.Mode != ModeBridge {
		t.Fatalf("env override mode")
	}
	if cfg.Backend != BackendCharm {
		t.Fatalf("env override backend")
	}
	if len(cfg.Networks) != 3 || cfg.Networks[0] != 2 || cfg.Networks[2] != 9 {
		t.Fatalf("env override networks: %v", cfg.Networks)
	}
	if cfg.Module != "sync" {
		t.Fatalf("env override module")
	}
}
