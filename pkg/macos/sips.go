package macos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
)

// ConvertIcnsToPNG converts an icns icon to a 256px png using sips.
func ConvertIcnsToPNG(ctx context.Context, exec command.Executor, src, dst string) error {
	out, err := exec.Run(ctx, "/usr/bin/sips", "-z", "256", "256", "-s", "format", "png", src, "--out", dst)
	if err != nil {
		return fmt.Errorf("sips conversion failed: %w", err)
	}

	// sips reports some conversion failures as warnings with a zero exit.
	if strings.Contains(out, "Warning") {
		return fmt.Errorf("sips conversion failed: %s", strings.TrimSpace(out))
	}

	return nil
}
