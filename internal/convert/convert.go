// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns source files into per-file PDF documents whose
// relative paths mirror the input tree.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/folder2pdf/internal/runlog"
	"github.com/pdiddy/folder2pdf/internal/scan"
)

// Document receives rendered lines and is flushed once to an output
// path. *pdfdoc.Document satisfies it; tests substitute a recorder.
type Document interface {
	AddText(text string)
	AddHeading(text string)
	WriteFile(path string) error
}

// NewDocument creates a fresh Document for one output file.
type NewDocument func() (Document, error)

// Status classifies the outcome of processing one file.
type Status string

const (
	// StatusConverted means the file's text content was rendered.
	StatusConverted Status = "converted"
	// StatusBinary means the binary placeholder was rendered instead.
	StatusBinary Status = "binary"
	// StatusOversized means the size-cap placeholder was rendered instead.
	StatusOversized Status = "oversized"
	// StatusFailed means the file could not be read or the PDF not written.
	StatusFailed Status = "failed"
)

// Options configures one batch run. All fields are read-only during
// processing.
type Options struct {
	// InputRoot is the folder being converted, as given by the user; it
	// appears verbatim in each document's header line.
	InputRoot string

	// OutputRoot receives the mirrored PDF tree.
	OutputRoot string

	// MaxFileSize is the size cap in bytes; zero disables the check.
	MaxFileSize int64

	// NewDocument builds the output document for each file.
	NewDocument NewDocument

	// Log records per-file actions and errors.
	Log *runlog.Logger

	// Record, if set, observes each file's outcome after processing.
	Record func(file scan.File, status Status)
}

// BatchResult holds the outcome counts of a batch run.
type BatchResult struct {
	Converted int
	Binary    int
	Oversized int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Binary + r.Oversized + r.Failed
}

// HasFailures reports whether any file failed to process.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessFile converts one source file into a PDF at the mirrored output
// path. The document always opens with a header naming the file's
// location; content is the file's text, or a placeholder for binary and
// oversized files. The binary check runs first and short-circuits the
// size check. Errors are rendered or logged, never propagated; the
// returned Status says what happened.
func ProcessFile(opts Options, file scan.File) Status {
	doc, err := opts.NewDocument()
	if err != nil {
		opts.Log.Error("failed to create document", "path", file.Path, "error", err)
		return StatusFailed
	}

	display := strings.ReplaceAll(filepath.ToSlash(file.RelPath), "/", " > ")
	doc.AddText(fmt.Sprintf("File Location: %s > %s", opts.InputRoot, display))
	doc.AddText("")

	status := StatusConverted
	switch {
	case scan.IsBinary(file.Path):
		doc.AddText("**Binary File: Content not displayed**")
		status = StatusBinary
		opts.Log.Info("skipped binary file", "path", file.Path)
	case opts.MaxFileSize > 0 && file.Size > opts.MaxFileSize:
		doc.AddText(fmt.Sprintf("**File skipped: Exceeds maximum size of %s MB**", megabytes(opts.MaxFileSize)))
		status = StatusOversized
		opts.Log.Info("skipped large file", "path", file.Path, "size", file.Size)
	default:
		data, err := os.ReadFile(file.Path)
		if err != nil {
			doc.AddText(fmt.Sprintf("**Error reading file: %v**", err))
			status = StatusFailed
			opts.Log.Error("error reading file", "path", file.Path, "error", err)
		} else {
			doc.AddText(strings.ToValidUTF8(string(data), "�"))
		}
	}

	outPath := OutputPath(opts.OutputRoot, file.RelPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		opts.Log.Error("failed to create output directory", "path", outPath, "error", err)
		return StatusFailed
	}
	if err := doc.WriteFile(outPath); err != nil {
		opts.Log.Error("failed to write PDF", "path", outPath, "error", err)
		return StatusFailed
	}

	opts.Log.Info("created PDF", "source", file.Path, "output", outPath)
	return status
}

// ProcessBatch runs ProcessFile over files sequentially, one file fully
// read, rendered, and written before the next begins. Per-file progress
// lines go to w, followed by a summary.
func ProcessBatch(opts Options, files []scan.File, w io.Writer) BatchResult {
	var r BatchResult
	total := len(files)
	for i, f := range files {
		status := ProcessFile(opts, f)
		fmt.Fprintf(w, "[%d/%d] %s: %s\n", i+1, total, status, f.RelPath)
		if opts.Record != nil {
			opts.Record(f, status)
		}
		switch status {
		case StatusConverted:
			r.Converted++
		case StatusBinary:
			r.Binary++
		case StatusOversized:
			r.Oversized++
		case StatusFailed:
			r.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d binary, %d oversized, %d failed (total: %d)\n",
		r.Converted, r.Binary, r.Oversized, r.Failed, r.Total())
	return r
}

// OutputPath maps a relative source path to its mirrored PDF path under
// outputRoot, with the extension replaced by .pdf.
func OutputPath(outputRoot, relPath string) string {
	ext := filepath.Ext(relPath)
	return filepath.Join(outputRoot, strings.TrimSuffix(relPath, ext)+".pdf")
}

// megabytes renders a byte count as a decimal MiB string, always keeping
// a fractional part ("2.0", "0.5").
func megabytes(n int64) string {
	s := strconv.FormatFloat(float64(n)/(1<<20), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
