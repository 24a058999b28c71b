package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. If the directory doesn't
// contain a configuration file the defaults are returned.
func Load(path string) (*Configuration, error) {
	// If given the path to a gshrc.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	return LoadFs(afero.NewBasePathFs(afero.NewOsFs(), path))
}

// LoadFs loads the configuration from the root of configFs.
func LoadFs(configFs afero.Fs) (*Configuration, error) {
	out := Default()
	out.configFs = configFs

	configContents, err := afero.ReadFile(configFs, ConfigurationName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return out, nil
	case err != nil:
		return nil, err
	}

	// Fields missing from the file keep their default values.
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigurationName, err)
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}

	return out, nil
}

// ErrExists is returned by Initialize if a configuration is already present.
var ErrExists = errors.New("configuration already exists")

// Initialize writes the default configuration into the directory.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	if err := afero.NewOsFs().MkdirAll(path, 0700); err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.configFs = afero.NewBasePathFs(afero.NewOsFs(), path)

	exists, err := afero.Exists(cfg.fs(), ConfigurationName)
	switch {
	case err != nil:
		return nil, err
	case exists:
		return nil, fmt.Errorf("%s: %w", filepath.Join(path, ConfigurationName), ErrExists)
	}

	logger.Printf("Writing %s\n", filepath.Join(path, ConfigurationName))
	if err := afero.WriteFile(cfg.fs(), ConfigurationName, defaultConfigData, 0600); err != nil {
		return nil, err
	}

	return cfg, nil
}
