package munki

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
)

// Paths of the munki tools on a configured munki workstation.
const (
	munkiimportTool  = "/usr/local/munki/munkiimport"
	makecatalogsTool = "/usr/local/munki/makecatalogs"
)

// savedPkginfoPrefix starts the munkiimport output line naming the created
// pkginfo file.
const savedPkginfoPrefix = "Saved pkginfo to "

// Importer runs munkiimport for import records. In dry-run mode the
// command line is written to Out instead of being executed.
type Importer struct {
	Exec   command.Executor
	DryRun bool

	// Out receives dry-run command lines and progress messages. Defaults
	// to standard output.
	Out io.Writer
}

func (i *Importer) out() io.Writer {
	if i.Out != nil {
		return i.Out
	}
	return os.Stdout
}

// CheckTools verifies the munki tools are installed before the import
// loop starts, so a missing workstation setup surfaces as one clear error
// instead of a failure per package.
func (i *Importer) CheckTools() error {
	for _, tool := range []string{munkiimportTool, makecatalogsTool} {
		if _, err := i.Exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s not found, install the munki tools and run munkiimport --configure: %w", filepath.Base(tool), err)
		}
	}
	return nil
}

// Args renders the munkiimport argument list for a record, with the
// installer path last. In dry-run mode the installer and uninstaller are
// reduced to their basenames for brevity.
func (i *Importer) Args(rec ImportRecord) []string {
	uninstaller := rec.UninstallerPath
	installer := rec.PackagePath
	if i.DryRun {
		uninstaller = filepath.Base(uninstaller)
		installer = filepath.Base(installer)
	}

	args := []string{
		"--nointeractive",
		"--category", rec.Category,
		"--catalog", rec.Catalog,
		"--developer", rec.Developer,
		"--repo_url", rec.RepoURL,
		"--subdirectory", rec.Subdirectory,
		"--minimum_os_version", rec.MinimumOSVersion,
		"--displayname", rec.DisplayName,
		"--description", rec.DisplayName,
		"--name", rec.Name,
		"--icon", rec.Icon,
		"--minimum_munki_version", rec.MinimumMunkiVersion,
		"--arch", rec.Arch,
		"--uninstallerpkg", uninstaller,
		"--pkgvers", rec.Version,
	}

	for _, app := range rec.BlockingApps {
		args = append(args, "--blocking-application", app)
	}

	return append(args, installer)
}

// Import runs munkiimport for one record and returns the path of the
// created pkginfo file. In dry-run mode the command line is printed and
// nothing runs; the returned path is empty.
func (i *Importer) Import(ctx context.Context, rec ImportRecord) (string, error) {
	args := i.Args(rec)

	if i.DryRun {
		fmt.Fprintln(i.out(), munkiimportTool+" "+strings.Join(args, " "))
		return "", nil
	}

	fmt.Fprintf(i.out(), "Importing %q\n", rec.Name)

	stdout, err := i.Exec.Run(ctx, munkiimportTool, args...)
	if err != nil {
		return "", fmt.Errorf("failed to import %q: %w", rec.Name, err)
	}

	fmt.Fprintf(i.out(), "Imported %q\n", rec.Name)

	return savedPkginfoPath(stdout, rec.RepoURL), nil
}

// Makecatalogs rebuilds the repo catalogs after a run with at least one
// successful import.
func (i *Importer) Makecatalogs(ctx context.Context, repoURL string) error {
	if _, err := i.Exec.Run(ctx, makecatalogsTool, "--repo_url", repoURL); err != nil {
		return fmt.Errorf("makecatalogs failed: %w", err)
	}
	return nil
}

// savedPkginfoPath parses the created pkginfo path from munkiimport
// output. A relative path is resolved against the repo.
func savedPkginfoPath(output, repoURL string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, savedPkginfoPrefix) {
			continue
		}

		path := strings.TrimRight(strings.TrimPrefix(line, savedPkginfoPrefix), ".")
		if filepath.IsAbs(path) {
			return path
		}

		repoPath, err := RepoPath(repoURL)
		if err != nil {
			return path
		}
		return filepath.Join(repoPath, path)
	}

	return ""
}
