// Package config loads and validates the shell's YAML configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name the shell looks for in its
// configuration directory.
const ConfigurationName = "config.yaml"

// Configuration holds the shell's startup settings.
type Configuration struct {
	// ShellName is the initial name rendered in the prompt.
	ShellName string `json:"shell_name" validate:"required"`
	// Terminator is the initial symbol appended to the name in the prompt.
	Terminator string `json:"terminator" validate:"required"`
	// MaxAliases bounds the alias table.
	MaxAliases int `json:"max_aliases" validate:"gte=1"`
	// Motd is printed once before the first prompt, if set.
	Motd string `json:"motd"`
	// AliasFile is preloaded into the alias table at startup, if set.
	AliasFile string `json:"alias_file"`
	// SessionLog receives JSON-lines dispatch events, if set.
	SessionLog string `json:"session_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// defaultConfig parses the embedded default configuration. It panics on
// failure because the default is compiled in and must always be valid.
func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
