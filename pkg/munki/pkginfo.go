package munki

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/micromdm/plist"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/adobe"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/macos"
)

// RepoPath resolves a munki repo URL to a filesystem path. Plain paths
// pass through unchanged.
func RepoPath(repoURL string) (string, error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", fmt.Errorf("invalid munki repo URL: %w", err)
	}

	switch u.Scheme {
	case "file":
		return u.Path, nil
	case "":
		return repoURL, nil
	default:
		return "", fmt.Errorf("unsupported munki repo scheme %q", u.Scheme)
	}
}

// ExistingPkginfos walks the repo's pkgsinfo directory and returns the
// names (base name without extension) of every pkginfo file found. A repo
// without a pkgsinfo directory yields an empty inventory.
func ExistingPkginfos(repoURL, pkginfoExt string) ([]string, error) {
	repoPath, err := RepoPath(repoURL)
	if err != nil {
		return nil, err
	}

	pkgsinfoDir := filepath.Join(repoPath, "pkgsinfo")
	if _, err := os.Stat(pkgsinfoDir); os.IsNotExist(err) {
		return nil, nil
	}

	var names []string
	err = filepath.WalkDir(pkgsinfoDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), pkginfoExt) {
			names = append(names, strings.TrimSuffix(d.Name(), pkginfoExt))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk pkgsinfo: %w", err)
	}

	return names, nil
}

// AlreadyImported reports whether a pkginfo for the record's name and
// version exists in the inventory.
func AlreadyImported(inventory []string, rec ImportRecord) bool {
	for _, name := range inventory {
		if strings.Contains(name, rec.PkginfoName()) {
			return true
		}
	}
	return false
}

// UpdateReceipts patches the receipts array of a pkginfo file created by
// munkiimport. munkiimport does not record the component receipts of the
// Acrobat installer itself, so munki would otherwise never see Acrobat as
// installed.
func UpdateReceipts(pkginfoPath string, receipts []adobe.Receipt) error {
	if len(receipts) == 0 {
		return nil
	}

	var data map[string]any
	if err := macos.DecodePlistFile(pkginfoPath, &data); err != nil {
		return fmt.Errorf("failed to read pkginfo: %w", err)
	}

	patched := make([]map[string]string, 0, len(receipts))
	for _, r := range receipts {
		patched = append(patched, map[string]string{
			"packageid": r.PackageID,
			"version":   r.Version,
		})
	}
	data["receipts"] = patched

	out, err := plist.MarshalIndent(data, "\t")
	if err != nil {
		return fmt.Errorf("failed to encode pkginfo: %w", err)
	}

	if err := os.WriteFile(pkginfoPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write pkginfo: %w", err)
	}

	return nil
}
