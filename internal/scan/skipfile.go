// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/folder2pdf/pkg/types"
)

// SkipFile is the on-disk YAML form of the skip rules, so a run can pin
// its filtering in a file instead of command-line flags.
type SkipFile struct {
	SkipFolders []string `yaml:"skip_folders"`
	SkipFiles   []string `yaml:"skip_files"`
	MaxFileSize int64    `yaml:"max_file_size_bytes"`
}

// LoadSkipFile reads skip rules from a YAML file. Fields left empty fall
// back to the built-in defaults so a partial file stays usable.
func LoadSkipFile(path string) (types.ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ScanConfig{}, fmt.Errorf("reading skip config %s: %w", path, err)
	}

	var sf SkipFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return types.ScanConfig{}, fmt.Errorf("parsing skip config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if sf.SkipFolders != nil {
		cfg.SkipFolders = sf.SkipFolders
	}
	if sf.SkipFiles != nil {
		cfg.SkipFiles = sf.SkipFiles
	}
	if sf.MaxFileSize > 0 {
		cfg.MaxFileSize = sf.MaxFileSize
	}
	return cfg, nil
}

// WriteSkipFile saves skip rules to a YAML file.
func WriteSkipFile(path string, cfg types.ScanConfig) error {
	sf := SkipFile{
		SkipFolders: cfg.SkipFolders,
		SkipFiles:   cfg.SkipFiles,
		MaxFileSize: cfg.MaxFileSize,
	}
	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling skip config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
