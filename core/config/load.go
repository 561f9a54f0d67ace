package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadOrDefault loads the configuration from the directory, falling back
// to the embedded defaults when no configuration file exists.
func LoadOrDefault(fsys afero.Fs, path string) (*Configuration, error) {
	out, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	return out, err
}
