package adobe

import (
	"context"
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/macos"
)

// Acrobat ships its real installer inside a DMG under the bundle's Setup
// resources; the optionXML.xml version is not the application version.
const acrobatSetupDir = "Contents/Resources/Setup"

// acrobatReceiptIDs are the pkg receipts munki needs to track for Acrobat
// so it can detect installation state.
var acrobatReceiptIDs = map[string]bool{
	"com.adobe.acrobat.DC.viewer.app.pkg.MUI":                true,
	"com.adobe.acrobat.DC.viewer.appsupport.pkg.MUI":         true,
	"com.adobe.acrobat.DC.viewer.browser.pkg.MUI":            true,
	"com.adobe.acrobat.DC.viewer.print_automator.pkg.MUI":    true,
	"com.adobe.acrobat.DC.viewer.print_pdf_services.pkg.MUI": true,
}

// distribution is the installer-gui-script Distribution file inside the
// expanded Acrobat package.
type distribution struct {
	XMLName     xml.Name `xml:"installer-gui-script"`
	VolumeCheck struct {
		AllowedOSVersions struct {
			OSVersions []struct {
				Min string `xml:"min,attr"`
			} `xml:"os-version"`
		} `xml:"allowed-os-versions"`
	} `xml:"volume-check"`
	Choices []struct {
		PkgRefs []struct {
			ID      string `xml:"id,attr"`
			Version string `xml:"version,attr"`
		} `xml:"pkg-ref"`
	} `xml:"choice"`
}

// packageInfo is the PackageInfo file of the application.pkg component,
// which carries the true Acrobat version.
type packageInfo struct {
	XMLName xml.Name `xml:"pkg-info"`
	Version string   `xml:"version,attr"`
}

// acrobatPatch is the package data recovered from the Acrobat DMG.
type acrobatPatch struct {
	Version  string
	MinOS    string
	Receipts []Receipt
}

// findAcrobatDMG locates the APRO*.dmg under the installer bundle's Setup
// resources.
func findAcrobatDMG(installerPath string) (string, error) {
	setupDir := filepath.Join(installerPath, acrobatSetupDir)

	var dmg string
	err := filepath.WalkDir(setupDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if !d.IsDir() && strings.HasPrefix(name, "APRO") && strings.HasSuffix(name, ".dmg") {
			dmg = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search for Acrobat DMG: %w", err)
	}
	if dmg == "" {
		return "", fmt.Errorf("no APRO*.dmg under %s", setupDir)
	}

	return dmg, nil
}

// findAcrobatInstaller locates the Acrobat installer package on the
// mounted DMG.
func findAcrobatInstaller(mountPoint string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(mountPoint, "*", "*.pkg"))
	if err != nil {
		return "", err
	}

	for _, m := range matches {
		if strings.Contains(m, "Installer") {
			return m, nil
		}
	}

	return "", fmt.Errorf("no installer package on mounted DMG %s", mountPoint)
}

// patchAcrobat mounts the Acrobat DMG, expands the installer package it
// contains and recovers the application version, minimum OS version and
// pkg receipts from the expanded package. The mount and the temporary
// expand directory are cleaned up before returning.
func patchAcrobat(ctx context.Context, exec command.Executor, dmgPath string) (acrobatPatch, error) {
	mountPoint, err := macos.AttachDMG(ctx, exec, dmgPath)
	if err != nil {
		return acrobatPatch{}, err
	}
	defer func() { _ = macos.DetachDMG(ctx, exec, mountPoint) }()

	installer, err := findAcrobatInstaller(mountPoint)
	if err != nil {
		return acrobatPatch{}, err
	}

	expanded, err := macos.ExpandPackage(ctx, exec, installer)
	if err != nil {
		return acrobatPatch{}, err
	}
	defer os.RemoveAll(expanded)

	return readExpandedAcrobat(expanded)
}

// readExpandedAcrobat reads the PackageInfo and Distribution files of an
// expanded Acrobat installer package.
func readExpandedAcrobat(expandedPath string) (acrobatPatch, error) {
	var patch acrobatPatch

	pkgInfoFile, err := os.Open(filepath.Join(expandedPath, "application.pkg", "PackageInfo"))
	if err != nil {
		return patch, fmt.Errorf("no PackageInfo in expanded Acrobat package: %w", err)
	}
	defer pkgInfoFile.Close()

	var info packageInfo
	if err := xml.NewDecoder(pkgInfoFile).Decode(&info); err != nil {
		return patch, fmt.Errorf("failed to parse PackageInfo: %w", err)
	}
	patch.Version = info.Version

	distFile, err := os.Open(filepath.Join(expandedPath, "Distribution"))
	if err != nil {
		return patch, fmt.Errorf("no Distribution in expanded Acrobat package: %w", err)
	}
	defer distFile.Close()

	var dist distribution
	if err := xml.NewDecoder(distFile).Decode(&dist); err != nil {
		return patch, fmt.Errorf("failed to parse Distribution: %w", err)
	}

	if versions := dist.VolumeCheck.AllowedOSVersions.OSVersions; len(versions) > 0 {
		patch.MinOS = versions[0].Min
	}

	for _, choice := range dist.Choices {
		for _, ref := range choice.PkgRefs {
			if acrobatReceiptIDs[ref.ID] {
				patch.Receipts = append(patch.Receipts, Receipt{
					PackageID: ref.ID,
					Version:   ref.Version,
				})
			}
		}
	}

	return patch, nil
}
