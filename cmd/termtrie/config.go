package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config mirrors the search command's flags so a recurring search can live
// in a yaml file. Flags override file values.
type Config struct {
	TermsFile string   `yaml:"terms-file"`
	TextFiles []string `yaml:"text-files"`
	Naive     bool     `yaml:"naive"`
	HideZero  bool     `yaml:"hide-zero"`
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return &cfg, nil
}
