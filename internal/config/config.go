// Package config loads cmd/mal's --rc file: a YAML document listing
// prelude scripts to load-file before the REPL starts or a script file
// runs.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the --rc file's shape.
type Config struct {
	// Prelude lists script paths, in order, to load-file before anything
	// else runs.
	Prelude []string `yaml:"prelude"`
}

// Load reads and parses the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rc file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing rc file %s: %w", path, err)
	}
	return &cfg, nil
}
