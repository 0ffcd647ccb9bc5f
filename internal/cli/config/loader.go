package config

import (
	"os"
	"path/filepath"

	"github.com/tannerklineintz/triedis-cli/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".triedis", "cli.yaml")
}

// Load loads CLI configuration, layering the YAML file and TRIEDIS_*
// environment variables over the defaults. A missing file at the
// default path is not an error; a missing file named explicitly is.
func Load(path string) (*CLIConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}

	cfg := Default()

	loader := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
