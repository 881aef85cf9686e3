package command

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	exec := &RealExecutor{}

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping subprocess test")
	}

	out, err := exec.Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRealExecutor_Run_NonZeroExit(t *testing.T) {
	exec := &RealExecutor{}

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping subprocess test")
	}

	_, err := exec.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "sh", exitErr.Name)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "oops", exitErr.Stderr)
}

func TestRealExecutor_FileExists(t *testing.T) {
	exec := &RealExecutor{}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, exec.FileExists(path))
	assert.False(t, exec.FileExists(filepath.Join(tmpDir, "absent")))
}

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		expected string
	}{
		{
			name:     "with stderr",
			err:      &ExitError{Name: "munkiimport", Code: 1, Stderr: "repo not mounted"},
			expected: "munkiimport exited with code 1: repo not mounted",
		},
		{
			name:     "without stderr",
			err:      &ExitError{Name: "hdiutil", Code: 2},
			expected: "hdiutil exited with code 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
