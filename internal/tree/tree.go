// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tree renders a directory's structure in box-drawing notation.
package tree

import (
	"os"
	"path/filepath"
)

// Title is the heading line of the structure document.
const Title = "Application Folder Structure"

// FileName is where the structure PDF is written inside the output root.
const FileName = "application_folder_structure.pdf"

const (
	branch       = "├── "
	corner       = "└── "
	pipe         = "│   "
	pad          = "    "
	deniedMarker = "[Permission Denied]"
)

// Entry is one line of the rendered tree listing.
type Entry struct {
	// Prefix carries the continuation columns of the enclosing levels.
	Prefix string

	// Connector is "├── " for all but the last entry of a directory,
	// which gets "└── ".
	Connector string

	// Name is the entry's base name, or the permission-denied marker.
	Name string

	// IsDir reports whether the entry is a directory.
	IsDir bool

	// Denied marks the placeholder leaf for an unreadable directory.
	Denied bool
}

// Line returns the entry as it appears in the listing.
func (e Entry) Line() string {
	return e.Prefix + e.Connector + e.Name
}

// frame tracks one directory level during traversal.
type frame struct {
	dir     string
	prefix  string
	entries []os.DirEntry
	idx     int
	denied  bool
}

func newFrame(dir, prefix string) *frame {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &frame{dir: dir, prefix: prefix, denied: true}
	}
	return &frame{dir: dir, prefix: prefix, entries: entries}
}

// Walk produces the full listing for root in depth-first order. Entries
// within a directory come sorted by name; a directory that cannot be
// listed yields a single denied leaf and is not descended into. The
// traversal keeps an explicit stack so it stays independent of how the
// listing is rendered.
func Walk(root string) []Entry {
	var out []Entry
	stack := []*frame{newFrame(root, "")}

	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if f.denied {
			out = append(out, Entry{Prefix: f.prefix, Connector: corner, Name: deniedMarker, Denied: true})
			stack = stack[:len(stack)-1]
			continue
		}
		if f.idx >= len(f.entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		e := f.entries[f.idx]
		last := f.idx == len(f.entries)-1
		f.idx++

		conn := branch
		if last {
			conn = corner
		}
		out = append(out, Entry{Prefix: f.prefix, Connector: conn, Name: e.Name(), IsDir: e.IsDir()})

		if e.IsDir() {
			childPrefix := f.prefix + pipe
			if last {
				childPrefix = f.prefix + pad
			}
			stack = append(stack, newFrame(filepath.Join(f.dir, e.Name()), childPrefix))
		}
	}
	return out
}

// Document receives the rendered listing. *pdfdoc.Document satisfies it.
type Document interface {
	AddText(text string)
	AddHeading(text string)
}

// Render writes the tree listing for root into doc: a bold title, a
// blank line, then one line per entry.
func Render(doc Document, root string) {
	doc.AddHeading(Title)
	doc.AddText("")
	for _, e := range Walk(root) {
		doc.AddText(e.Line())
	}
}
