package munki

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/adobe"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/config"
)

func defaultConfig() config.Config {
	return config.Config{
		Category:        config.DefaultCategory,
		Catalog:         config.DefaultCatalog,
		Developer:       config.DefaultDeveloper,
		MunkiRepo:       config.DefaultMunkiRepo,
		MunkiSubdir:     config.DefaultMunkiSubdir,
		MinMunkiVersion: config.DefaultMinMunkiVersion,
		Suffix:          config.DefaultSuffix,
	}
}

func photoshopPackage() adobe.Package {
	return adobe.Package{
		InstallerPath:   "/adobe/Photoshop_24.0/Build/Photoshop_24.0_Install.pkg",
		UninstallerPath: "/adobe/Photoshop_24.0/Build/Photoshop_24.0_Uninstall.pkg",
		SAPCode:         "PHSP",
		Name:            "Photoshop_24.0",
		Title:           "Adobe Photoshop",
		Version:         "24.0",
		Arch:            "x86_64",
		MinOS:           "10.15.0",
	}
}

func TestNewImportRecord_Defaults(t *testing.T) {
	rec := NewImportRecord(photoshopPackage(), defaultConfig())

	assert.Equal(t, "Adobe Photoshop Creative Cloud", rec.DisplayName)
	assert.Equal(t, "Photoshop_24.0", rec.Name)
	assert.Equal(t, "24.0", rec.Version)
	assert.Equal(t, "Creativity", rec.Category)
	assert.Equal(t, "testing", rec.Catalog)
	assert.Equal(t, "Adobe", rec.Developer)
	assert.Equal(t, "file:///Volumes/munki_repo", rec.RepoURL)
	assert.Equal(t, "apps", rec.Subdirectory)
	assert.Equal(t, "2.1", rec.MinimumMunkiVersion)
	assert.Equal(t, "10.15.0", rec.MinimumOSVersion)
	assert.Equal(t, "x86_64", rec.Arch)
	assert.Equal(t, "Photoshop_24.0.png", rec.Icon)
	assert.Equal(t, "Photoshop_24.0-24.0", rec.PkginfoName())
}

func TestNewImportRecord_Overrides(t *testing.T) {
	cfg := config.Config{
		Category:        "Design",
		Catalog:         "production",
		Developer:       "Adobe Inc",
		MunkiRepo:       "file:///srv/repo",
		MunkiSubdir:     "creative",
		MinMunkiVersion: "5.0",
		MinOSVersion:    "12.0",
		Suffix:          "CC 2023",
	}

	rec := NewImportRecord(photoshopPackage(), cfg)

	assert.Equal(t, "Adobe Photoshop CC 2023", rec.DisplayName)
	assert.Equal(t, "Design", rec.Category)
	assert.Equal(t, "production", rec.Catalog)
	assert.Equal(t, "Adobe Inc", rec.Developer)
	assert.Equal(t, "file:///srv/repo", rec.RepoURL)
	assert.Equal(t, "creative", rec.Subdirectory)
	assert.Equal(t, "5.0", rec.MinimumMunkiVersion)

	// The configured minimum OS beats the scanned one.
	assert.Equal(t, "12.0", rec.MinimumOSVersion)
}

func TestNewImportRecord_ScannedMinOSWhenNoOverride(t *testing.T) {
	pkg := photoshopPackage()
	pkg.MinOS = "11.0"

	rec := NewImportRecord(pkg, defaultConfig())

	assert.Equal(t, "11.0", rec.MinimumOSVersion)
}
