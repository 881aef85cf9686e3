package macos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlistFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Info.plist")
	content := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>Adobe Photoshop</string>
	<key>LSMinimumSystemVersion</key>
	<string>10.15.0</string>
</dict>
</plist>
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var info struct {
		CFBundleName           string `plist:"CFBundleName"`
		LSMinimumSystemVersion string `plist:"LSMinimumSystemVersion"`
	}
	require.NoError(t, DecodePlistFile(path, &info))

	assert.Equal(t, "Adobe Photoshop", info.CFBundleName)
	assert.Equal(t, "10.15.0", info.LSMinimumSystemVersion)
}

func TestDecodePlistFile_Missing(t *testing.T) {
	var v map[string]any
	err := DecodePlistFile(filepath.Join(t.TempDir(), "missing.plist"), &v)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestDecodePlistFile_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.plist")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a plist"), 0644))

	var v map[string]any
	err := DecodePlistFile(path, &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding XML plist")
}
