// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/folder2pdf/pkg/types"
)

func TestSkipFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skip.yaml")
	cfg := types.ScanConfig{
		SkipFolders: []string{".git", "build"},
		SkipFiles:   []string{"README.md", "generic.pdf"},
		MaxFileSize: 5 << 20,
	}

	require.NoError(t, WriteSkipFile(path, cfg))

	got, err := LoadSkipFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadSkipFilePartial(t *testing.T) {
	// Fields absent from the file keep the built-in defaults.
	path := filepath.Join(t.TempDir(), "skip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skip_files: [notes.txt]\n"), 0o644))

	got, err := LoadSkipFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"notes.txt"}, got.SkipFiles)
	assert.Equal(t, DefaultConfig().SkipFolders, got.SkipFolders)
	assert.Equal(t, DefaultConfig().MaxFileSize, got.MaxFileSize)
}

func TestLoadSkipFileErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "bad.yaml")
				require.NoError(t, os.WriteFile(path, []byte("skip_folders: [unclosed"), 0o644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSkipFile(tt.setup(t))
			assert.Error(t, err)
		})
	}
}
