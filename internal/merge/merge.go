// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates previously generated PDFs into a single
// document.
package merge

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/folder2pdf/internal/runlog"
	"github.com/pdiddy/folder2pdf/pkg/types"
)

// DefaultOutputName is the merged document's file name when the merge
// configuration names none.
const DefaultOutputName = "app_source.pdf"

// Result summarizes one merge run.
type Result struct {
	// Found counts the candidate PDFs collected under the folder.
	Found int

	// Merged counts the sources whose pages made it into the output.
	Merged int

	// Skipped counts sources that failed to open or parse.
	Skipped int

	// Output is the path of the merged document.
	Output string
}

// CollectSources returns every file ending in .pdf (case-insensitive)
// under folder, excluding outputName itself so repeated runs never fold
// the merged document back in. Order is the walk's: depth-first across
// directories, lexicographic within one. The merged document preserves
// this order.
func CollectSources(folder, outputName string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") || name == outputName {
			return nil
		}
		sources = append(sources, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", folder, err)
	}
	return sources, nil
}

// Merge appends the pages of every PDF under folder, in collection
// order, into the file named by cfg.OutputName inside folder. A source
// that fails validation is logged and skipped, not fatal; an error is
// returned only when nothing could be merged or the output could not be
// written.
func Merge(folder string, cfg types.MergeConfig, log *runlog.Logger) (Result, error) {
	outputName := cfg.OutputName
	if outputName == "" {
		outputName = DefaultOutputName
	}

	sources, err := CollectSources(folder, outputName)
	if err != nil {
		return Result{}, err
	}

	res := Result{Found: len(sources), Output: filepath.Join(folder, outputName)}
	log.Info("collected PDFs to merge", "count", res.Found, "folder", folder)

	conf := model.NewDefaultConfiguration()
	valid := make([]string, 0, len(sources))
	for _, src := range sources {
		if err := api.ValidateFile(src, conf); err != nil {
			log.Error("failed to read PDF, skipping", "path", src, "error", err)
			res.Skipped++
			continue
		}
		valid = append(valid, src)
	}

	if len(valid) == 0 {
		return res, fmt.Errorf("no readable PDFs under %s", folder)
	}

	if err := api.MergeCreateFile(valid, res.Output, false, conf); err != nil {
		return res, fmt.Errorf("merging into %s: %w", res.Output, err)
	}
	res.Merged = len(valid)

	log.Info("merged PDF written", "output", res.Output, "merged", res.Merged, "skipped", res.Skipped)
	return res, nil
}
