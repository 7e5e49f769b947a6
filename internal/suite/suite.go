package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a named list of goals run back to back.
type Suite struct {
	Name  string   `yaml:"name"`
	Goals []string `yaml:"goals"`
}

// Load reads a YAML suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("suite: read %s: %w", path, err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("suite: parse %s: %w", path, err)
	}
	if len(s.Goals) == 0 {
		return nil, fmt.Errorf("suite: %s contains no goals", path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return &s, nil
}
