package munki

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/adobe"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
)

// statExecutor is a MockExecutor whose FileExists consults the real
// filesystem, so the icon destination checks see the test fixtures.
func statExecutor() *command.MockExecutor {
	return &command.MockExecutor{
		FileExistsFunc: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

func writeIconFixture(t *testing.T) adobe.Package {
	t.Helper()

	installer := t.TempDir()
	iconDir := filepath.Join(installer, "Contents", "Resources", "HD", "PHSP24", "appIcons")
	require.NoError(t, os.MkdirAll(iconDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(iconDir, "appIcon2x.png"), []byte("png bytes"), 0644))

	return adobe.Package{
		InstallerPath: installer,
		SAPCode:       "PHSP",
		Name:          "Photoshop_24.0",
		Version:       "24.0",
	}
}

func TestFindAppIcon(t *testing.T) {
	pkg := writeIconFixture(t)

	icon := FindAppIcon(pkg)
	assert.Contains(t, icon, "appIcon2x.png")
}

func TestFindAppIcon_None(t *testing.T) {
	pkg := adobe.Package{InstallerPath: t.TempDir(), SAPCode: "PHSP"}
	assert.Empty(t, FindAppIcon(pkg))
}

func TestInstallIcon(t *testing.T) {
	pkg := writeIconFixture(t)

	// A fresh repo without an icons directory yet.
	repo := t.TempDir()

	var buf bytes.Buffer
	mock := statExecutor()
	require.NoError(t, InstallIcon(context.Background(), mock, pkg, repo, false, &buf))

	copied, err := os.ReadFile(filepath.Join(repo, "icons", "Photoshop_24.0.png"))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(copied))
	assert.Contains(t, buf.String(), `Copied icon "Photoshop_24.0.png"`)

	// No sips run for a png source.
	assert.Empty(t, mock.Calls)
}

func TestInstallIcon_DryRun(t *testing.T) {
	pkg := writeIconFixture(t)
	repo := t.TempDir()

	var buf bytes.Buffer
	mock := statExecutor()
	require.NoError(t, InstallIcon(context.Background(), mock, pkg, repo, true, &buf))

	assert.Contains(t, buf.String(), `Copy icon "Photoshop_24.0.png"`)
	assert.Empty(t, mock.Calls)
	assert.NoFileExists(t, filepath.Join(repo, "icons", "Photoshop_24.0.png"))
}

func TestInstallIcon_ExistingKept(t *testing.T) {
	pkg := writeIconFixture(t)
	repo := t.TempDir()
	iconPath := filepath.Join(repo, "icons", "Photoshop_24.0.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(iconPath), 0755))
	require.NoError(t, os.WriteFile(iconPath, []byte("old icon"), 0644))

	var buf bytes.Buffer
	require.NoError(t, InstallIcon(context.Background(), statExecutor(), pkg, repo, false, &buf))

	kept, err := os.ReadFile(iconPath)
	require.NoError(t, err)
	assert.Equal(t, "old icon", string(kept))
}
