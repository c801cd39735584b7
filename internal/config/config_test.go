package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PERISCOPE_CONFIG", "")
	t.Setenv("PERISCOPE_LOG_DIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if !strings.Contains(cfg.LogDir, "shepherd") {
		t.Fatalf("LogDir = %q, want default shepherd dir", cfg.LogDir)
	}
	if !strings.HasSuffix(cfg.AgentLogPath(), "shepherd.log") {
		t.Fatalf("AgentLogPath() = %q, want .../shepherd.log", cfg.AgentLogPath())
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	t.Setenv("PERISCOPE_CONFIG", "")
	t.Setenv("PERISCOPE_LOG_DIR", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "log_dir = \"" + filepath.Join(dir, "logs") + "\"\nlog_format = \"Plain\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogDir != filepath.Join(dir, "logs") {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, filepath.Join(dir, "logs"))
	}
	if cfg.LogFormat != "plain" {
		t.Fatalf("LogFormat = %q, want plain (lowercased)", cfg.LogFormat)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Setenv("PERISCOPE_CONFIG", "")
	t.Setenv("PERISCOPE_LOG_DIR", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("log_dir = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "alt.toml")
	if err := os.WriteFile(cfgPath, []byte("log_format = \"plain\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	envLogs := filepath.Join(dir, "env-logs")

	t.Setenv("PERISCOPE_CONFIG", cfgPath)
	t.Setenv("PERISCOPE_LOG_DIR", envLogs)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogFormat != "plain" {
		t.Fatalf("LogFormat = %q, want plain from PERISCOPE_CONFIG file", cfg.LogFormat)
	}
	if cfg.LogDir != envLogs {
		t.Fatalf("LogDir = %q, want env override %q", cfg.LogDir, envLogs)
	}
}

func TestLoad_ExplicitPathBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "explicit.toml")
	if err := os.WriteFile(explicit, []byte("log_format = \"plain\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PERISCOPE_CONFIG", filepath.Join(dir, "ignored.toml"))
	t.Setenv("PERISCOPE_LOG_DIR", "")

	cfg, err := Load(explicit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogFormat != "plain" {
		t.Fatalf("LogFormat = %q, want plain from explicit path", cfg.LogFormat)
	}
}
