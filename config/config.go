// Package config loads the optional YAML run configuration. CLI flags
// override anything set here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI flags so a run can be described in one file.
type Config struct {
	SourceDir   string `yaml:"sourceDir"`
	FilePattern string `yaml:"filePattern"`
	OutputPath  string `yaml:"outputPath"`

	IncludeProcessors *bool `yaml:"includeProcessors"`
	IncludeWorkers    *bool `yaml:"includeWorkers"`
	Strict            bool  `yaml:"strict"`

	ParquetPath string `yaml:"parquetPath"`
	MetricsAddr string `yaml:"metricsAddr"`

	S3 struct {
		Bucket   string `yaml:"bucket"`
		Prefix   string `yaml:"prefix"`
		Region   string `yaml:"region"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"s3"`
}

// Load reads the configuration from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
