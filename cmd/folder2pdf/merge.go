// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/folder2pdf/internal/merge"
	"github.com/pdiddy/folder2pdf/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <pdf_folder>",
	Short: "Merge all PDFs in a folder into a single document",
	Long: `Merge appends the pages of every PDF under <pdf_folder>, in walk order,
into one document written inside the folder. The output file itself is
never included as a source, so repeated runs do not grow the result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]
		outputName, _ := cmd.Flags().GetString("output")

		if info, err := os.Stat(folder); err != nil || !info.IsDir() {
			return fmt.Errorf("folder %q does not exist or is not a directory", folder)
		}

		log, err := openLog(cmd)
		if err != nil {
			return err
		}
		defer log.Close()

		res, err := merge.Merge(folder, types.MergeConfig{OutputName: outputName}, log)
		if err != nil {
			return err
		}
		fmt.Printf("Merged %d of %d PDFs into %q.\n", res.Merged, res.Found, res.Output)
		return nil
	},

	SilenceUsage: true,
}

func init() {
	mergeCmd.Flags().String("output", merge.DefaultOutputName, "file name of the merged document")

	rootCmd.AddCommand(mergeCmd)
}
