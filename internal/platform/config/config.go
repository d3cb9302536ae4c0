package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath string      `yaml:"db_path"`
	Chart  ChartConfig `yaml:"chart"`
}

type ChartConfig struct {
	DefaultMetric string `yaml:"default_metric"`
}

func Default(baseDir string) Config {
	return Config{
		DBPath: filepath.Join(baseDir, "daytrack.db"),
		Chart:  ChartConfig{DefaultMetric: "weight"},
	}
}

// Load reads the yaml config at path, creating it with defaults on first run.
// An empty path resolves to ~/.daytrack/config.yaml.
func Load(path string) (Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, ".daytrack", "config.yaml")
	}

	cfg := Default(filepath.Dir(path))
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if writeErr := write(path, cfg); writeErr != nil {
			return Config{}, writeErr
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = Default(filepath.Dir(path)).DBPath
	}
	if cfg.Chart.DefaultMetric == "" {
		cfg.Chart.DefaultMetric = "weight"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
