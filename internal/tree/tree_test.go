// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func lines(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Line()
	}
	return out
}

func TestWalkConnectors(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a"))
	touch(t, filepath.Join(root, "b"))
	touch(t, filepath.Join(root, "c"))

	got := lines(Walk(root))
	want := []string{
		"├── a",
		"├── b",
		"└── c",
	}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkNestedPrefixes(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, "mid", "inner"))
	touch(t, filepath.Join(root, "mid", "inner", "deep.txt"))
	touch(t, filepath.Join(root, "mid", "m.txt"))
	mkdirAll(t, filepath.Join(root, "zlast"))
	touch(t, filepath.Join(root, "zlast", "only.txt"))

	got := lines(Walk(root))
	want := []string{
		"├── mid",
		"│   ├── inner",
		"│   │   └── deep.txt",
		"│   └── m.txt",
		"└── zlast",
		"    └── only.txt",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("listing:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestWalkPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	mkdirAll(t, locked)
	touch(t, filepath.Join(locked, "secret.txt"))
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	got := lines(Walk(root))
	want := []string{
		"└── locked",
		"    └── [Permission Denied]",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("listing:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestWalkEmptyDir(t *testing.T) {
	if got := Walk(t.TempDir()); len(got) != 0 {
		t.Errorf("Walk(empty) = %v, want no entries", got)
	}
}

// fakeDoc records rendered lines.
type fakeDoc struct {
	headings []string
	lines    []string
}

func (d *fakeDoc) AddText(text string)    { d.lines = append(d.lines, text) }
func (d *fakeDoc) AddHeading(text string) { d.headings = append(d.headings, text) }

func TestRender(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "file1.txt"))
	touch(t, filepath.Join(root, "image.bin"))

	doc := &fakeDoc{}
	Render(doc, root)

	if len(doc.headings) != 1 || doc.headings[0] != Title {
		t.Errorf("headings = %v, want [%q]", doc.headings, Title)
	}
	want := []string{"", "├── file1.txt", "└── image.bin"}
	if strings.Join(doc.lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines = %v, want %v", doc.lines, want)
	}
}
