// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/folder2pdf/internal/scan"
)

var skipConfigCmd = &cobra.Command{
	Use:   "skip-config <path>",
	Short: "Write the default skip rules to a YAML file",
	Long: `Skip-config writes the built-in skip rules (folder names, file names,
size cap) to a YAML file that can be edited and passed back with
--skip-config.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := scan.WriteSkipFile(path, scan.DefaultConfig()); err != nil {
			return err
		}
		fmt.Printf("Skip rules written to %q.\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skipConfigCmd)
}
