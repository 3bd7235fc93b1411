package cliapp

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of boilerpy.yaml, the optional config file for
// the batch and watch subcommands. Values given on the command line
// override the file.
type fileConfig struct {
	Extractor string   `yaml:"extractor"`
	OutputDir string   `yaml:"output_dir"`
	Globs     []string `yaml:"globs"`
}

// loadConfig reads path if it exists; a missing file is not an error, it
// just yields a zero-value config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
