package adobe

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
)

// Adobe Admin Console builds name the generated bundles with these
// suffixes.
const (
	installSuffix   = "_Install.pkg"
	uninstallSuffix = "_Uninstall.pkg"
)

// Scanner discovers Adobe installer packages under a directory of unzipped
// Adobe Admin Console downloads.
type Scanner struct {
	// Exec runs the macOS tools needed to read the Acrobat DMG.
	Exec command.Executor

	// SAPCodes restricts discovery to the given SAP codes. Empty means
	// every discovered package is yielded.
	SAPCodes []string

	// Warnf receives a message for each directory that is skipped. Nil
	// discards the warnings.
	Warnf func(format string, args ...any)
}

func (s *Scanner) warnf(format string, args ...any) {
	if s.Warnf != nil {
		s.Warnf(format, args...)
	}
}

// Discover walks the immediate subdirectories of dir and yields one
// Package per directory holding a parsable installer bundle. Directories
// without one are skipped with a warning. The sequence is lazy, finite and
// yields packages in sorted directory order; it is consumed once.
func (s *Scanner) Discover(ctx context.Context, dir string) iter.Seq[Package] {
	return func(yield func(Package) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.warnf("failed to read %s: %v", dir, err)
			return
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			pkg, err := s.scanDir(ctx, filepath.Join(dir, entry.Name()))
			if err != nil {
				s.warnf("skipping %q: %v", entry.Name(), err)
				continue
			}

			if len(s.SAPCodes) > 0 && !slices.Contains(s.SAPCodes, pkg.SAPCode) {
				continue
			}

			if !yield(pkg) {
				return
			}
		}
	}
}

// scanDir locates the installer bundle within a single package directory
// and parses its descriptors.
func (s *Scanner) scanDir(ctx context.Context, dir string) (Package, error) {
	installer, uninstaller, err := locateBundles(dir)
	if err != nil {
		return Package{}, err
	}

	pkg, err := parseOptionXML(installer)
	if err != nil {
		return Package{}, err
	}
	pkg.UninstallerPath = uninstaller

	pkg.MinOS, err = minimumOSVersion(installer)
	if err != nil {
		return Package{}, err
	}

	// The Acrobat bundle descriptor carries a build version, not the
	// application version; the DMG inside the bundle has the truth.
	if pkg.SAPCode == "APRO" {
		dmg, err := findAcrobatDMG(installer)
		if err != nil {
			return Package{}, err
		}

		patch, err := patchAcrobat(ctx, s.Exec, dmg)
		if err != nil {
			return Package{}, err
		}

		pkg.Version = patch.Version
		pkg.Receipts = patch.Receipts
		if patch.MinOS != "" {
			pkg.MinOS = patch.MinOS
		}
	}

	return pkg, nil
}

// locateBundles finds the *_Install.pkg bundle within dir, along with its
// matching *_Uninstall.pkg bundle when one exists. The directory itself
// counts when it carries the descriptor directly.
func locateBundles(dir string) (installer, uninstaller string, err error) {
	if _, statErr := os.Stat(filepath.Join(dir, optionXMLPath)); statErr == nil {
		return dir, siblingUninstaller(dir), nil
	}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), installSuffix) {
			installer = path
			return fs.SkipAll
		}
		return nil
	})
	if walkErr != nil {
		return "", "", fmt.Errorf("failed to search for installer bundle: %w", walkErr)
	}
	if installer == "" {
		return "", "", fmt.Errorf("no %s bundle found", installSuffix)
	}

	return installer, siblingUninstaller(installer), nil
}

// siblingUninstaller returns the *_Uninstall.pkg bundle sitting next to an
// installer bundle, or empty when there is none.
func siblingUninstaller(installer string) string {
	uninstaller := strings.TrimSuffix(installer, installSuffix) + uninstallSuffix
	if uninstaller == installer {
		return ""
	}
	if info, err := os.Stat(uninstaller); err == nil && info.IsDir() {
		return uninstaller
	}
	return ""
}
