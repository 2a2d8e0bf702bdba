// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration structs shared across stages.
package types

// ScanConfig holds the skip rules applied while enumerating input files.
// It is established once at startup and read-only afterwards.
type ScanConfig struct {
	// SkipFolders lists directory names pruned from the walk entirely.
	SkipFolders []string `json:"skip_folders" yaml:"skip_folders"`

	// SkipFiles lists file names excluded from processing.
	SkipFiles []string `json:"skip_files" yaml:"skip_files"`

	// MaxFileSize is the size threshold in bytes above which a file's
	// content is replaced by a placeholder (default 2 MiB).
	MaxFileSize int64 `json:"max_file_size_bytes" yaml:"max_file_size_bytes"`
}

// RenderConfig holds the font settings used for every generated PDF.
type RenderConfig struct {
	// FontPath is the path to a Unicode-capable TrueType font file.
	FontPath string `json:"font_path" yaml:"font_path"`

	// FontName is the name the font is registered under (default "CustomFont").
	FontName string `json:"font_name" yaml:"font_name"`
}

// MergeConfig holds settings for the merge stage.
type MergeConfig struct {
	// OutputName is the file name of the merged document, created inside
	// the folder being merged (default "app_source.pdf").
	OutputName string `json:"output_name" yaml:"output_name"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	Scan   ScanConfig   `json:"scan" yaml:"scan"`
	Render RenderConfig `json:"render" yaml:"render"`
	Merge  MergeConfig  `json:"merge" yaml:"merge"`
}
