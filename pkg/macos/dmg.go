// Package macos wraps the macOS command line tools amcli shells out to.
package macos

import (
	"context"
	"fmt"
	"strings"

	"github.com/micromdm/plist"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
)

// attachInfo is the property list hdiutil attach emits with -plist.
type attachInfo struct {
	SystemEntities []systemEntity `plist:"system-entities"`
}

type systemEntity struct {
	MountPoint string `plist:"mount-point"`
}

// AttachDMG mounts a disk image without browsing it and returns the mount
// point of the attached volume.
func AttachDMG(ctx context.Context, exec command.Executor, dmgPath string) (string, error) {
	out, err := exec.Run(ctx, "/usr/bin/hdiutil", "attach", "-plist", "-nobrowse", dmgPath)
	if err != nil {
		return "", fmt.Errorf("hdiutil attach failed: %w", err)
	}

	var info attachInfo
	if err := plist.NewXMLDecoder(strings.NewReader(out)).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to parse hdiutil output: %w", err)
	}

	for _, entity := range info.SystemEntities {
		if entity.MountPoint != "" {
			return entity.MountPoint, nil
		}
	}

	return "", fmt.Errorf("no mount point in hdiutil output for %s", dmgPath)
}

// DetachDMG unmounts a previously attached disk image.
func DetachDMG(ctx context.Context, exec command.Executor, mountPoint string) error {
	if _, err := exec.Run(ctx, "/usr/bin/hdiutil", "detach", "-quiet", mountPoint); err != nil {
		return fmt.Errorf("hdiutil detach failed: %w", err)
	}
	return nil
}
