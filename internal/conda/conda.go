package conda

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frostyard/autoenv/internal/runner"
)

// Conda is a located conda installation.
type Conda struct {
	// Path is the absolute path to the conda binary.
	Path string
}

// homePrefixes are well-known install prefixes relative to the home directory.
var homePrefixes = []string{
	"miniconda3",
	"anaconda3",
	"miniforge3",
	"mambaforge",
}

// systemPrefixes are well-known system-wide install prefixes.
var systemPrefixes = []string{
	"/opt/conda",
	"/opt/miniconda3",
	"/usr/local/miniconda3",
}

func candidates() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		for _, p := range homePrefixes {
			paths = append(paths, filepath.Join(home, p, "bin", "conda"))
		}
	}
	for _, p := range systemPrefixes {
		paths = append(paths, filepath.Join(p, "bin", "conda"))
	}
	return paths
}

// Detect locates a conda installation: an explicit override first, then
// well-known install prefixes, then $PATH, then the base prefix reported by
// conda itself. Returns an error if none is found.
func Detect(r runner.Runner, override string) (*Conda, error) {
	return detect(r, candidates(), override)
}

func detect(r runner.Runner, paths []string, override string) (*Conda, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return nil, fmt.Errorf("configured conda_path %s: %w", override, err)
		}
		return &Conda{Path: override}, nil
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return &Conda{Path: p}, nil
		}
	}
	if p, err := r.LookPath("conda"); err == nil {
		return &Conda{Path: p}, nil
	}
	// Last resort: conda may be a shell alias that still answers info queries.
	if out, err := r.Run("conda", "info", "--base"); err == nil {
		base := strings.TrimSpace(string(out))
		p := filepath.Join(base, "bin", "conda")
		if _, err := os.Stat(p); err == nil {
			return &Conda{Path: p}, nil
		}
	}
	return nil, fmt.Errorf("conda not found; install miniconda or set conda_path in config")
}

// EnvExists reports whether a named environment is registered with conda.
func (c *Conda) EnvExists(r runner.Runner, name string) (bool, error) {
	out, err := r.Run(c.Path, "env", "list", "--json")
	if err != nil {
		return false, fmt.Errorf("conda env list failed: %w\n%s", err, out)
	}
	var envs struct {
		Envs []string `json:"envs"`
	}
	if err := json.Unmarshal(out, &envs); err != nil {
		return false, fmt.Errorf("parse conda env list: %w", err)
	}
	for _, e := range envs.Envs {
		if filepath.Base(e) == name {
			return true, nil
		}
	}
	return false, nil
}

// CreateFromFile creates an environment from a declarative environment file
// in one step. No partial-state recovery is attempted on failure.
func (c *Conda) CreateFromFile(r runner.Runner, file string) error {
	if err := r.RunAttached(c.Path, "env", "create", "-f", file); err != nil {
		return fmt.Errorf("conda env create from %s failed: %w", file, err)
	}
	return nil
}

// CreateBare creates an empty environment pinned to a python version.
func (c *Conda) CreateBare(r runner.Runner, name, pythonVersion string) error {
	if err := r.RunAttached(c.Path, "create", "-n", name, "python="+pythonVersion, "-y"); err != nil {
		return fmt.Errorf("conda create failed: %w", err)
	}
	return nil
}

// InstallRequirements pip-installs a flat requirements list into the environment.
func (c *Conda) InstallRequirements(r runner.Runner, name, file string) error {
	if err := r.RunAttached(c.Path, "run", "-n", name, "pip", "install", "-r", file); err != nil {
		return fmt.Errorf("pip install from %s failed: %w", file, err)
	}
	return nil
}

// Remove deletes the named environment and everything in it.
func (c *Conda) Remove(r runner.Runner, name string) error {
	out, err := r.Run(c.Path, "env", "remove", "-n", name, "-y")
	if err != nil {
		return fmt.Errorf("conda env remove failed: %w\n%s", err, out)
	}
	return nil
}

// Version returns the conda version string, e.g. "conda 24.1.2".
func (c *Conda) Version(r runner.Runner) (string, error) {
	out, err := r.Run(c.Path, "--version")
	if err != nil {
		return "", fmt.Errorf("conda --version failed: %w\n%s", err, out)
	}
	return strings.TrimSpace(string(out)), nil
}

// EnvPythonVersion returns the python version string inside the environment.
func (c *Conda) EnvPythonVersion(r runner.Runner, name string) (string, error) {
	out, err := r.Run(c.Path, "run", "-n", name, "python", "--version")
	if err != nil {
		return "", fmt.Errorf("python --version in %s failed: %w\n%s", name, err, out)
	}
	return strings.TrimSpace(string(out)), nil
}
