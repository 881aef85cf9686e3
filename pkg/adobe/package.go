// Package adobe discovers Adobe Creative Cloud installer packages on disk
// and reads the vendor descriptors that describe them.
package adobe

// Package is a single Adobe product installer discovered on disk.
type Package struct {
	// InstallerPath is the *_Install.pkg bundle directory.
	InstallerPath string

	// UninstallerPath is the matching *_Uninstall.pkg bundle directory,
	// empty when none sits next to the installer.
	UninstallerPath string

	// SAPCode identifies the Adobe product, e.g. "PHSP".
	SAPCode string

	// Name is Adobe's package name from the descriptor, e.g. "Photoshop_24.0".
	Name string

	// Title is the human readable product name, e.g. "Adobe Photoshop".
	Title string

	Version string
	Arch    string

	// MinOS is the minimum macOS version the installer declares.
	MinOS string

	// Receipts are the pkg receipts munki should track after installation.
	// Only Acrobat carries these.
	Receipts []Receipt

	// BlockingApps must not be running while the product installs.
	BlockingApps []string
}

// Receipt identifies an installer receipt recorded in a munki pkginfo file.
type Receipt struct {
	PackageID string `plist:"packageid"`
	Version   string `plist:"version"`
}

// PkginfoName returns the base name munkiimport derives the pkginfo file
// name from.
func (p Package) PkginfoName() string {
	return p.Name + "-" + p.Version
}

// IconName returns the repo icon file name for the package.
func (p Package) IconName() string {
	return p.Name + ".png"
}
