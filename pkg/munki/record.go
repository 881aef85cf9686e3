package munki

import (
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/adobe"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/config"
)

// ImportRecord holds every value passed to munkiimport for one package.
// All fields are resolved before the record reaches the Importer.
type ImportRecord struct {
	// PackagePath is the installer bundle to import.
	PackagePath string

	// UninstallerPath is the matching uninstaller bundle.
	UninstallerPath string

	// Name is the munki item name, e.g. "Photoshop_24.0".
	Name string

	// DisplayName is the product name with the configured suffix, also
	// used as the item description.
	DisplayName string

	Version             string
	Category            string
	Catalog             string
	Developer           string
	RepoURL             string
	Subdirectory        string
	MinimumMunkiVersion string
	MinimumOSVersion    string
	Arch                string
	Icon                string

	// BlockingApps are passed as repeated --blocking-application values.
	BlockingApps []string

	// Receipts are patched into the created pkginfo after import.
	Receipts []adobe.Receipt
}

// PkginfoName returns the base name munkiimport derives the pkginfo file
// name from.
func (r ImportRecord) PkginfoName() string {
	return r.Name + "-" + r.Version
}

// NewImportRecord composes the ImportRecord for a discovered package.
// Configuration values apply uniformly to every package in the run and
// take precedence over scanned defaults.
func NewImportRecord(pkg adobe.Package, cfg config.Config) ImportRecord {
	minOS := pkg.MinOS
	if cfg.MinOSVersion != "" {
		minOS = cfg.MinOSVersion
	}

	return ImportRecord{
		PackagePath:         pkg.InstallerPath,
		UninstallerPath:     pkg.UninstallerPath,
		Name:                pkg.Name,
		DisplayName:         pkg.Title + " " + cfg.Suffix,
		Version:             pkg.Version,
		Category:            cfg.Category,
		Catalog:             cfg.Catalog,
		Developer:           cfg.Developer,
		RepoURL:             cfg.MunkiRepo,
		Subdirectory:        cfg.MunkiSubdir,
		MinimumMunkiVersion: cfg.MinMunkiVersion,
		MinimumOSVersion:    minOS,
		Arch:                pkg.Arch,
		Icon:                pkg.IconName(),
		BlockingApps:        pkg.BlockingApps,
		Receipts:            pkg.Receipts,
	}
}
