package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	EnvName       string `toml:"env_name"`
	PythonVersion string `toml:"python_version"`
	CondaPath     string `toml:"conda_path"`
	SamplesDir    string `toml:"samples_dir"`
	Notify        bool   `toml:"notify"`
}

func DefaultRoot() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "autoenv")
}

func Load(root string) (*Config, error) {
	cfg := &Config{
		EnvName:       "workbench",
		PythonVersion: "3.11",
		SamplesDir:    filepath.Join(root, "cwe_samples"),
	}

	path := filepath.Join(root, "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
		// Ensure samples_dir default if not in file
		if cfg.SamplesDir == "" {
			cfg.SamplesDir = filepath.Join(root, "cwe_samples")
		}
	}

	return cfg, nil
}

func (c *Config) Save(root string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	path := filepath.Join(root, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
