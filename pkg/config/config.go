// Package config defines the amcli run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Defaults applied when neither a command line flag nor the config file
// provides a value.
const (
	DefaultCategory        = "Creativity"
	DefaultCatalog         = "testing"
	DefaultDeveloper       = "Adobe"
	DefaultMunkiRepo       = "file:///Volumes/munki_repo"
	DefaultMunkiSubdir     = "apps"
	DefaultMinMunkiVersion = "2.1"
	DefaultSuffix          = "Creative Cloud"
	DefaultLocale          = "en_GB"
)

// Config is the resolved run configuration. It is built once at startup
// and read-only afterwards; every value applies uniformly to all packages
// processed in the run.
type Config struct {
	// AdobeDir is the directory containing unzipped Adobe installers.
	AdobeDir string

	// Locale is the installer locale code, e.g. "en_GB".
	Locale string

	Category        string
	Catalog         string
	Developer       string
	MunkiRepo       string
	MunkiSubdir     string
	MinMunkiVersion string

	// MinOSVersion overrides the minimum macOS version read from each
	// package when set.
	MinOSVersion string

	// Suffix is appended to each product display name.
	Suffix string

	// ImportSAPCodes restricts the import to the given SAP codes. Empty
	// means all discovered packages are imported.
	ImportSAPCodes []string

	ListSAPCodes bool
	ListLocales  bool
	DryRun       bool
}

// ValidateAdobeDir checks that the configured installer directory exists
// and is a directory.
func (c Config) ValidateAdobeDir() error {
	if c.AdobeDir == "" {
		return errors.New("the following arguments are required: --adobe-dir")
	}

	info, err := os.Stat(c.AdobeDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("adobe dir does not exist: %s", c.AdobeDir)
		}
		return fmt.Errorf("failed to access adobe dir: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("adobe dir is not a directory: %s", c.AdobeDir)
	}

	return nil
}
