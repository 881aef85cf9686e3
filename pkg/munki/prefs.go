// Package munki builds munkiimport invocations for discovered Adobe
// packages and manages the pkginfo files they create.
package munki

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/macos"
)

// preferencesDomain is the munkiimport preference file name.
const preferencesDomain = "com.googlecode.munki.munkiimport.plist"

// Preference defaults applied when no munkiimport preference file exists.
const (
	DefaultRepoURL          = "file:///Volumes/munki_repo"
	DefaultPkginfoExtension = ".plist"
)

// ImportPreferences is the subset of the munkiimport preference file this
// tool reads.
type ImportPreferences struct {
	RepoURL          string `plist:"repo_url"`
	PkginfoExtension string `plist:"pkginfo_extension"`
}

// PreferenceFiles returns the candidate munkiimport preference file paths,
// user domain first.
func PreferenceFiles() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "Library", "Preferences", preferencesDomain))
	}
	return append(paths, filepath.Join("/Library", "Preferences", preferencesDomain))
}

// LoadPreferences reads the first existing preference file of the given
// paths, preferring earlier entries. Empty paths means the standard user
// and system locations. Missing files are not an error; the defaults
// apply.
func LoadPreferences(paths ...string) (ImportPreferences, error) {
	if len(paths) == 0 {
		paths = PreferenceFiles()
	}

	prefs := ImportPreferences{
		RepoURL:          DefaultRepoURL,
		PkginfoExtension: DefaultPkginfoExtension,
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := macos.DecodePlistFile(path, &prefs); err != nil {
			return prefs, fmt.Errorf("failed to read munkiimport preferences: %w", err)
		}

		if prefs.RepoURL == "" {
			prefs.RepoURL = DefaultRepoURL
		}
		if prefs.PkginfoExtension == "" {
			prefs.PkginfoExtension = DefaultPkginfoExtension
		}
		break
	}

	return prefs, nil
}
