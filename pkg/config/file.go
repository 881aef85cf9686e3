package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the name of the config directory under ~/.config.
	ConfigDirName = "amcli"
	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.yaml"
)

// File is the subset of settings that may be provided by the optional
// config file at ~/.config/amcli/config.yaml. Command line flags take
// precedence over file values.
type File struct {
	Category        string `yaml:"category,omitempty"`
	Catalog         string `yaml:"catalog,omitempty"`
	Developer       string `yaml:"developer,omitempty"`
	MunkiRepo       string `yaml:"munki_repo,omitempty"`
	MunkiSubdir     string `yaml:"munki_subdir,omitempty"`
	MinMunkiVersion string `yaml:"min_munki_version,omitempty"`
	MinOSVersion    string `yaml:"min_os_version,omitempty"`
	Suffix          string `yaml:"suffix,omitempty"`
	Locale          string `yaml:"locale,omitempty"`
}

// DefaultFilePath returns the config file path (~/.config/amcli/config.yaml).
// Respects XDG_CONFIG_HOME if set.
func DefaultFilePath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName, ConfigFileName), nil
}

// LoadFile reads the config file at path, or at the default location when
// path is empty. A missing file is not an error; the zero File is returned
// and the built-in defaults apply.
func LoadFile(path string) (*File, error) {
	explicit := path != ""
	if path == "" {
		var err error
		path, err = DefaultFilePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &f, nil
}
