// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/folder2pdf/internal/pdfdoc"
	"github.com/pdiddy/folder2pdf/internal/runlog"
	"github.com/pdiddy/folder2pdf/internal/tree"
	"github.com/pdiddy/folder2pdf/pkg/types"
)

var structureCmd = &cobra.Command{
	Use:   "structure <input_folder> <output_folder>",
	Short: "Generate only the folder-structure PDF",
	Long: `Structure renders the input folder's directory tree in box-drawing
notation into <output_folder>/` + tree.FileName + `, without converting
any files.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir, outputDir := args[0], args[1]
		fontPath, _ := cmd.Flags().GetString("font")
		fontName, _ := cmd.Flags().GetString("fontname")

		if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
			return fmt.Errorf("input folder %q does not exist or is not a directory", inputDir)
		}
		if _, err := os.Stat(fontPath); err != nil {
			return fmt.Errorf("font file %q not found: provide a valid TTF font file", fontPath)
		}

		log, err := openLog(cmd)
		if err != nil {
			return err
		}
		defer log.Close()

		render := types.RenderConfig{FontPath: fontPath, FontName: fontName}
		return writeStructurePDF(inputDir, outputDir, render, log)
	},

	SilenceUsage: true,
}

func init() {
	structureCmd.Flags().String("font", "", "path to the TTF font file to use for PDFs")
	structureCmd.Flags().String("fontname", pdfdoc.DefaultFontName, "name to register the custom font under")
	structureCmd.MarkFlagRequired("font")

	rootCmd.AddCommand(structureCmd)
}

// writeStructurePDF renders the tree listing of inputDir into the fixed
// structure file inside outputDir.
func writeStructurePDF(inputDir, outputDir string, render types.RenderConfig, log *runlog.Logger) error {
	doc, err := pdfdoc.New(render)
	if err != nil {
		return err
	}

	tree.Render(doc, inputDir)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output folder: %w", err)
	}
	out := filepath.Join(outputDir, tree.FileName)
	if err := doc.WriteFile(out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("Folder structure PDF saved to %q.\n", out)
	log.Info("folder structure PDF created", "output", out)
	return nil
}
