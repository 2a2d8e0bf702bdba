// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates candidate files under an input root and
// classifies file content as text or binary.
package scan

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/folder2pdf/pkg/types"
)

// binarySniffLen caps how many leading bytes the binary check inspects.
const binarySniffLen = 1024

// DefaultConfig returns the built-in skip rules: common tooling
// directories, dotfiles handled separately, and a 2 MiB size cap.
func DefaultConfig() types.ScanConfig {
	return types.ScanConfig{
		SkipFolders: []string{".git", "__pycache__", "node_modules", "local_tiktoken_cache"},
		SkipFiles:   []string{".dockerignore"},
		MaxFileSize: 2 << 20,
	}
}

// File is one candidate discovered during the walk.
type File struct {
	// Path locates the file on disk.
	Path string

	// RelPath is the path relative to the input root, used as the
	// mirroring key for output layout.
	RelPath string

	// Size is the file size in bytes at walk time.
	Size int64
}

// Collect walks root and returns every file that survives the skip
// rules, in walk order. Directories whose name appears in SkipFolders or
// starts with a dot are pruned; files in SkipFiles or starting with a
// dot are excluded. The full list is materialized before any processing
// so the caller can report a total up front. Unreadable subtrees are
// skipped, not fatal.
func Collect(root string, cfg types.ScanConfig) ([]File, error) {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("input folder %s does not exist or is not a directory", root)
	}

	skipDirs := toSet(cfg.SkipFolders)
	skipFiles := toSet(cfg.SkipFiles)

	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if skipFiles[name] || strings.HasPrefix(name, ".") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		files = append(files, File{Path: path, RelPath: rel, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// IsBinary reports whether the file looks binary: a zero byte anywhere
// in its first 1024 bytes. It is a heuristic, not a MIME check. Read
// failures are swallowed and report false.
func IsBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, binarySniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
