package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath   = ".truthtable.yaml"
	DefaultOutput = "result.txt"
)

type Config struct {
	Locale       string `yaml:"locale,omitempty" env:"TRUTHTABLE_LOCALE"`
	MaxVariables int    `yaml:"max-variables,omitempty"`
	// Output is where the last report is written. "-" disables the file.
	Output  string `yaml:"output,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Explain bool   `yaml:"explain,omitempty"`
	Color   *bool  `yaml:"color,omitempty"`
	// Verify re-evaluates every table with the expr engine.
	Verify bool `yaml:"verify,omitempty"`

	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Locale: "en",
		Output: DefaultOutput,
		Format: "markdown",
		Path:   DefaultPath,
	}
}

// LoadConfig reads the YAML file at path on top of Default. When the file
// does not exist the returned error satisfies os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	return config, nil
}

// Write stores the configuration at c.Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	return nil
}

// WriteReport overwrites the output file with the given report.
func (c *Config) WriteReport(report string) error {
	if c.Output == "" || c.Output == "-" {
		return nil
	}

	absPath, err := filepath.Abs(c.Output)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = c.Output
	}

	if err := os.WriteFile(absPath, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", absPath, err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
