package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .apidocs/config.yaml.
type ProjectConfig struct {
	Library          string   `yaml:"library"`
	Root             string   `yaml:"root"`
	OutputDir        string   `yaml:"output_dir"`
	FormatConfigPath string   `yaml:"format_config"`
	PagesPath        string   `yaml:"pages_path"`
	SystemDir        string   `yaml:"system_components_dir"`
	Include          []string `yaml:"include"`
	Exclude          []string `yaml:"exclude"`
	LogLevel         string   `yaml:"log_level"`
	Workers          int      `yaml:"workers"`
}

const projectConfigPath = ".apidocs/config.yaml"

// loadProjectConfig reads .apidocs/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(projectConfigPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve applies the fallback chain: explicit flag value, then project
// config value, then the built-in default.
func resolve(flagValue, configValue, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return defaultValue
}
