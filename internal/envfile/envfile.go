package envfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvFile is the subset of a conda environment definition we care about:
// the environment name and its top-level dependency specs.
type EnvFile struct {
	Name         string `yaml:"name"`
	Dependencies []any  `yaml:"dependencies"`
}

// Read parses a declarative environment file.
func Read(path string) (*EnvFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ef EnvFile
	if err := yaml.Unmarshal(data, &ef); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &ef, nil
}

// PythonVersion returns the pinned python version from the dependency list,
// or "" when python is unpinned. Pip sub-maps are skipped.
func (ef *EnvFile) PythonVersion() string {
	for _, dep := range ef.Dependencies {
		s, ok := dep.(string)
		if !ok {
			continue
		}
		spec, ver, found := strings.Cut(s, "=")
		if found && strings.TrimSpace(spec) == "python" {
			return strings.Trim(strings.TrimSpace(ver), "=")
		}
	}
	return ""
}
