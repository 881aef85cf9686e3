package munki

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/adobe"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/macos"
)

// iconNamePattern marks the retina product icon Adobe ships inside each
// installer bundle.
const iconNamePattern = "appIcon2x"

// FindAppIcon locates the product icon for a package inside its installer
// bundle. Empty when the bundle carries none.
func FindAppIcon(pkg adobe.Package) string {
	var icon string
	_ = filepath.WalkDir(pkg.InstallerPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.Contains(path, pkg.SAPCode) && strings.Contains(d.Name(), iconNamePattern) {
			icon = path
			return fs.SkipAll
		}
		return nil
	})
	return icon
}

// InstallIcon copies the package's product icon into the repo icons
// directory as <Name>.png, converting from icns when needed. An icon
// already in the repo is left alone. In dry-run mode the action is
// printed, not performed.
func InstallIcon(ctx context.Context, exec command.Executor, pkg adobe.Package, repoURL string, dryRun bool, out io.Writer) error {
	src := FindAppIcon(pkg)
	if src == "" {
		return nil
	}

	repoPath, err := RepoPath(repoURL)
	if err != nil {
		return err
	}
	dst := filepath.Join(repoPath, "icons", pkg.IconName())

	if dryRun {
		if exec.FileExists(dst) {
			fmt.Fprintf(out, "Icon %q exists in icons folder\n", pkg.IconName())
		} else {
			fmt.Fprintf(out, "Copy icon %q to icons folder\n", pkg.IconName())
		}
		return nil
	}

	if exec.FileExists(dst) {
		return nil
	}

	// A fresh repo may not have an icons directory yet.
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create icons directory: %w", err)
	}

	if strings.HasSuffix(src, ".icns") {
		if err := macos.ConvertIcnsToPNG(ctx, exec, src, dst); err != nil {
			return err
		}
	} else if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to copy icon: %w", err)
	}

	fmt.Fprintf(out, "Copied icon %q to icons folder\n", pkg.IconName())

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
