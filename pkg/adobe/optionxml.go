package adobe

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/macos"
)

// Descriptor file locations within an installer bundle.
const (
	optionXMLPath = "Contents/Resources/optionXML.xml"
	infoPlistPath = "Contents/Info.plist"
)

// installInfo is the InstallInfo document Adobe writes to optionXML.xml.
// Acrobat packages carry a Medias/Media list instead of HDMedias/HDMedia.
type installInfo struct {
	XMLName               xml.Name `xml:"InstallInfo"`
	PackageName           string   `xml:"PackageName"`
	ProcessorArchitecture string   `xml:"ProcessorArchitecture"`
	HDMedias              []media  `xml:"HDMedias>HDMedia"`
	Medias                []media  `xml:"Medias>Media"`
}

type media struct {
	SAPCode        string `xml:"SAPCode"`
	ProductVersion string `xml:"productVersion"`
}

// infoPlist is the subset of the bundle Info.plist read per package.
type infoPlist struct {
	LSMinimumSystemVersion string `plist:"LSMinimumSystemVersion"`
}

// selectMedia returns the first media entry whose SAP code is in the SAP
// code table.
func (i installInfo) selectMedia() (media, error) {
	medias := i.HDMedias
	if len(medias) == 0 {
		medias = i.Medias
	}

	for _, m := range medias {
		if IsValidSAPCode(m.SAPCode) {
			return m, nil
		}
	}

	return media{}, fmt.Errorf("no media entry with a known SAP code")
}

// parseOptionXML reads the optionXML.xml descriptor of an installer bundle
// and returns a Package with the fields the descriptor provides.
func parseOptionXML(installerPath string) (Package, error) {
	f, err := os.Open(filepath.Join(installerPath, optionXMLPath))
	if err != nil {
		return Package{}, fmt.Errorf("no package descriptor: %w", err)
	}
	defer f.Close()

	var info installInfo
	if err := xml.NewDecoder(f).Decode(&info); err != nil {
		return Package{}, fmt.Errorf("failed to parse optionXML.xml: %w", err)
	}

	m, err := info.selectMedia()
	if err != nil {
		return Package{}, err
	}

	arch := info.ProcessorArchitecture
	if arch == "x64" {
		arch = "x86_64"
	}

	return Package{
		InstallerPath: installerPath,
		SAPCode:       m.SAPCode,
		Name:          info.PackageName,
		Title:         ProductName(m.SAPCode),
		Version:       m.ProductVersion,
		Arch:          arch,
		BlockingApps:  BlockingApplications(m.SAPCode),
	}, nil
}

// minimumOSVersion reads LSMinimumSystemVersion from the installer bundle
// Info.plist. A missing plist yields an empty version, not an error.
func minimumOSVersion(installerPath string) (string, error) {
	path := filepath.Join(installerPath, infoPlistPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	var info infoPlist
	if err := macos.DecodePlistFile(path, &info); err != nil {
		return "", fmt.Errorf("failed to read Info.plist: %w", err)
	}

	return info.LSMinimumSystemVersion, nil
}
