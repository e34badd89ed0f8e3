package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report summarizes one generation pass.
type Report struct {
	Database   string       `yaml:"database"`
	Statements int          `yaml:"statements"`
	Files      []FileReport `yaml:"files"`
	Missing    []string     `yaml:"missing_ingredients,omitempty"`
}

// FileReport describes one source read during a pass.
type FileReport struct {
	Source     string `yaml:"source"`
	Path       string `yaml:"path"`
	Rows       int    `yaml:"rows"`
	Statements int    `yaml:"statements"`
}

// WriteReport writes r as YAML to path.
func WriteReport(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
