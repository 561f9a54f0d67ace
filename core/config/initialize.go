package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory. It
// refuses to overwrite an existing configuration file.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	configPath := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, configPath)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists, not overwriting", configPath)
	}

	if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
		return err
	}

	logger.Printf("wrote %s", configPath)
	return nil
}
