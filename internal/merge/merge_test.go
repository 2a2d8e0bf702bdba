// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/folder2pdf/internal/runlog"
	"github.com/pdiddy/folder2pdf/pkg/types"
)

func write(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectSources(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b.pdf", "x")
	write(t, dir, "a.pdf", "x")
	write(t, dir, "UPPER.PDF", "x")
	write(t, dir, "notes.txt", "x")
	write(t, dir, "app_source.pdf", "pre-existing merged output")
	write(t, dir, filepath.Join("sub", "c.pdf"), "x")

	got, err := CollectSources(dir, "app_source.pdf")
	if err != nil {
		t.Fatal(err)
	}

	var rels []string
	for _, p := range got {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			t.Fatal(err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}

	want := []string{"UPPER.PDF", "a.pdf", "b.pdf", "sub/c.pdf"}
	if strings.Join(rels, ",") != strings.Join(want, ",") {
		t.Errorf("sources = %v, want %v", rels, want)
	}
}

func TestCollectSourcesExcludesOutputEverywhere(t *testing.T) {
	// Exclusion matches on base name at every depth, so repeated runs
	// never fold a previous merged output back in.
	dir := t.TempDir()
	write(t, dir, "merged.pdf", "output")
	write(t, dir, filepath.Join("sub", "merged.pdf"), "not the output")

	got, err := CollectSources(dir, "merged.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("sources = %v, want none (base-name exclusion applies per directory)", got)
	}
}

func TestMergeSkipsUnparseable(t *testing.T) {
	// Every candidate here is garbage, so nothing merges and the run
	// reports an error, with each source counted as skipped.
	dir := t.TempDir()
	write(t, dir, "bad1.pdf", "this is not a pdf")
	write(t, dir, "bad2.pdf", "neither is this")

	res, err := Merge(dir, types.MergeConfig{OutputName: "app_source.pdf"}, runlog.Discard())
	if err == nil {
		t.Fatal("expected error when no source is readable")
	}
	if res.Found != 2 || res.Skipped != 2 || res.Merged != 0 {
		t.Errorf("result = %+v, want Found=2 Skipped=2 Merged=0", res)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "app_source.pdf")); statErr == nil {
		t.Error("merged output was written despite no readable sources")
	}
}

func TestMergeEmptyFolder(t *testing.T) {
	_, err := Merge(t.TempDir(), types.MergeConfig{OutputName: "app_source.pdf"}, runlog.Discard())
	if err == nil {
		t.Fatal("expected error for folder with no PDFs")
	}
}

func TestMergeDefaultOutputName(t *testing.T) {
	// An empty configuration falls back to app_source.pdf, which is then
	// excluded from its own sources.
	dir := t.TempDir()
	write(t, dir, DefaultOutputName, "pre-existing merged output")

	res, err := Merge(dir, types.MergeConfig{}, runlog.Discard())
	if err == nil {
		t.Fatal("expected error: the only PDF present is the output itself")
	}
	if res.Found != 0 {
		t.Errorf("Found = %d, want 0", res.Found)
	}
	if res.Output != filepath.Join(dir, DefaultOutputName) {
		t.Errorf("Output = %q, want %q", res.Output, filepath.Join(dir, DefaultOutputName))
	}
}
