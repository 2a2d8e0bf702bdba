// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc builds paginated text PDFs with a fixed layout: a
// single Unicode TrueType font at size 10, 5 mm rows, and automatic
// page breaks with a 15 mm bottom reserve.
package pdfdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/folder2pdf/pkg/types"
)

const (
	rowHeight    = 5
	bodySize     = 10
	headingSize  = 14
	bottomMargin = 15
)

// Document is an in-memory paginated PDF under construction. Create one
// per output file, add text, then flush it once with WriteFile.
type Document struct {
	pdf      *gofpdf.Fpdf
	fontName string
}

// DefaultFontName is used when the render configuration names no font.
const DefaultFontName = "CustomFont"

// New creates a Document using the TrueType font at cfg.FontPath,
// registered under cfg.FontName. A missing font file is an error;
// callers treat it as a startup precondition violation, not a per-file
// failure.
func New(cfg types.RenderConfig) (*Document, error) {
	if _, err := os.Stat(cfg.FontPath); err != nil {
		return nil, fmt.Errorf("font file %s: %w", cfg.FontPath, err)
	}
	fontName := cfg.FontName
	if fontName == "" {
		fontName = DefaultFontName
	}

	pdf := gofpdf.New("P", "mm", "A4", filepath.Dir(cfg.FontPath))
	pdf.SetAutoPageBreak(true, bottomMargin)

	file := filepath.Base(cfg.FontPath)
	pdf.AddUTF8Font(fontName, "", file)
	pdf.AddUTF8Font(fontName, "B", file)
	pdf.SetFont(fontName, "", bodySize)
	pdf.AddPage()
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("registering font %s: %w", cfg.FontPath, err)
	}

	return &Document{pdf: pdf, fontName: fontName}, nil
}

// AddText appends text one line per 5 mm row, splitting on line feeds.
// Lines longer than the page width word-wrap; every line is followed by
// an explicit break so blank lines keep their height. Page overflow adds
// a new page automatically.
func (d *Document) AddText(text string) {
	for _, line := range strings.Split(text, "\n") {
		d.pdf.MultiCell(0, rowHeight, line, "", "L", false)
		d.pdf.Ln(-1)
	}
}

// AddHeading appends text in the bold heading variant, then restores the
// body font.
func (d *Document) AddHeading(text string) {
	d.pdf.SetFont(d.fontName, "B", headingSize)
	d.AddText(text)
	d.pdf.SetFont(d.fontName, "", bodySize)
}

// WriteFile finalizes the document and writes it to path.
func (d *Document) WriteFile(path string) error {
	return d.pdf.OutputFileAndClose(path)
}
