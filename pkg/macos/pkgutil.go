package macos

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
)

// ExpandPackage unpacks a flat installer package into a fresh temporary
// directory and returns the directory path. pkgutil requires the target to
// not exist, so a unique name is generated per call. The caller is
// responsible for removing the directory.
func ExpandPackage(ctx context.Context, exec command.Executor, pkgPath string) (string, error) {
	dst := filepath.Join(os.TempDir(), "amcli-expand-"+uuid.NewString())

	if _, err := exec.Run(ctx, "/usr/sbin/pkgutil", "--expand", pkgPath, dst); err != nil {
		return "", fmt.Errorf("pkgutil expand failed: %w", err)
	}

	return dst, nil
}
