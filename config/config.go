// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// RootSettingsFile is the default settings file, in the user's home directory
	RootSettingsFile = filepath.Join(homeDir(), ".polyply", "config.yaml")
)

// Config is the root-level settings struct and is a mix
// of settings available in config.yaml and those
// available from the command line
type Config struct {
	// Verbose is whether to log progress to stderr
	Verbose bool `mapstructure:"verbose"`

	// Workers is the number of meta-molecules built at once
	Workers int `mapstructure:"workers"`

	// SharedLibrary is whether exclusion distances are lowered on the
	// force field's blocks themselves, rather than on a copy per molecule.
	// Forces one worker.
	SharedLibrary bool `mapstructure:"shared-library"`

	// Indent is whether the JSON output is indented
	Indent bool `mapstructure:"indent"`
}

// New returns a new Config struct populated by Viper settings (from
// the settings file) and/or command line arguments
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}
	return c
}

// Load reads the settings file named by the "settings" key, if there is
// one, and decodes v into a Config
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if settings := v.GetString("settings"); settings != "" {
		if _, err := os.Stat(settings); err == nil {
			v.SetConfigFile(settings)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
			}
		} else if settings != RootSettingsFile {
			// only the default settings file is optional
			return nil, fmt.Errorf("failed to find settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("workers", 1)
	v.SetDefault("shared-library", false)
	v.SetDefault("indent", true)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
