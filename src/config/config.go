package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WebConfig configures the web adapter. Values come from an optional YAML
// file; environment variables override the file.
type WebConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	ChartsDir  string `yaml:"charts_dir"`
	PageTitle  string `yaml:"page_title"`
}

func DefaultWebConfig() WebConfig {
	return WebConfig{
		ListenAddr: ":8080",
		ChartsDir:  "charts",
		PageTitle:  "barwatch",
	}
}

// LoadWebConfig reads the YAML config at path when it exists, then applies
// the BARWATCH_LISTEN_ADDR and BARWATCH_CHARTS_DIR environment overrides.
func LoadWebConfig(path string) (WebConfig, error) {
	cfg := DefaultWebConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return WebConfig{}, fmt.Errorf("LoadWebConfig: failed to read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return WebConfig{}, fmt.Errorf("LoadWebConfig: failed to parse %s: %w", path, err)
		}
	}

	if addr := os.Getenv("BARWATCH_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if dir := os.Getenv("BARWATCH_CHARTS_DIR"); dir != "" {
		cfg.ChartsDir = dir
	}

	return cfg, nil
}
