package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields periscope needs from shepherd's config.
type Config struct {
	LogDir    string
	LogFormat string // "json" or "plain"; informational, the parser accepts both
}

// envOverrides are applied on top of the file-based config.
type envOverrides struct {
	ConfigPath string `env:"PERISCOPE_CONFIG"`
	LogDir     string `env:"PERISCOPE_LOG_DIR"`
}

const (
	defaultConfigPath = "~/.config/shepherd/config.toml"
	defaultLogDir     = "~/.local/share/shepherd/logs"
	defaultLogFormat  = "json"
)

// Load locates and parses the shepherd config, falling back to defaults when
// missing. PERISCOPE_CONFIG overrides the config location and
// PERISCOPE_LOG_DIR the log directory, both taking precedence over the file.
func Load(path string) (Config, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if strings.TrimSpace(path) == "" {
		path = overrides.ConfigPath
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{LogDir: defaultLogDir, LogFormat: defaultLogFormat}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finish(cfg, overrides)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogDir    string `toml:"log_dir"`
		LogFormat string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = dir
	}
	if format := strings.TrimSpace(raw.LogFormat); format != "" {
		cfg.LogFormat = strings.ToLower(format)
	}

	return finish(cfg, overrides)
}

func finish(cfg Config, overrides envOverrides) (Config, error) {
	if dir := strings.TrimSpace(overrides.LogDir); dir != "" {
		cfg.LogDir = dir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)
	return cfg, nil
}

// AgentLogPath returns the path to shepherd's primary diagnostic log.
func (c Config) AgentLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/shepherd.log")
	}
	return filepath.Join(c.LogDir, "shepherd.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
