// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the folder2pdf CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/folder2pdf/internal/convert"
	"github.com/pdiddy/folder2pdf/internal/manifest"
	"github.com/pdiddy/folder2pdf/internal/merge"
	"github.com/pdiddy/folder2pdf/internal/pdfdoc"
	"github.com/pdiddy/folder2pdf/internal/runlog"
	"github.com/pdiddy/folder2pdf/internal/scan"
	"github.com/pdiddy/folder2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	// individualDir is the subfolder of the output root that receives
	// the mirrored per-file PDFs.
	individualDir = "individual_pdfs"

	// manifestFileName is the SQLite run manifest inside the output root.
	manifestFileName = "run_manifest.db"

	// defaultLogFile is the append-only run log in the working directory.
	defaultLogFile = "pdf_conversion.log"
)

// rootCmd converts a folder's files into mirrored per-file PDFs and
// optionally generates the structure PDF and the merged document.
var rootCmd = &cobra.Command{
	Use:   "folder2pdf <input_folder> <output_folder>",
	Short: "Convert a folder's files into mirrored per-file PDFs",
	Long: `folder2pdf walks a source folder and renders every file's text content
into its own PDF under <output_folder>/individual_pdfs/, mirroring the
source tree. Binary and oversized files get a placeholder page instead
of content. Optionally it renders the folder structure as a PDF and
merges all generated PDFs into a single document.

Skip rules (folder names, file names, size cap) come from the config
file, the environment, or a --skip-config YAML file.`,
	Args: cobra.ExactArgs(2),
	RunE: runPipeline,

	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./folder2pdf.yaml or ~/.config/folder2pdf/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", defaultLogFile, "append-only run log path (empty disables logging)")

	rootCmd.Flags().String("font", "", "path to the TTF font file to use for PDFs")
	rootCmd.Flags().String("fontname", pdfdoc.DefaultFontName, "name to register the custom font under")
	rootCmd.Flags().Bool("generate-structure", false, "also generate a folder-structure PDF")
	rootCmd.Flags().Bool("merge", false, "merge all individual PDFs into "+merge.DefaultOutputName)
	rootCmd.Flags().Int64("max-file-size", 0, "maximum file size in bytes (0 uses the configured default, 2 MiB)")
	rootCmd.Flags().String("skip-config", "", "YAML file with skip rules overriding the defaults")
	rootCmd.Flags().Bool("manifest", false, "record per-file outcomes in "+manifestFileName)
	rootCmd.MarkFlagRequired("font")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("folder2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "folder2pdf"))
		}
	}

	defaults := scan.DefaultConfig()
	viper.SetDefault("skip_folders", defaults.SkipFolders)
	viper.SetDefault("skip_files", defaults.SkipFiles)
	viper.SetDefault("max_file_size_bytes", defaults.MaxFileSize)

	viper.SetEnvPrefix("FOLDER2PDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openLog builds the run logger from the --log-file flag. An empty path
// disables logging.
func openLog(cmd *cobra.Command) (*runlog.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return runlog.Discard(), nil
	}
	return runlog.Open(path)
}

// scanConfig resolves the skip rules: viper-backed defaults, then the
// --skip-config file, then the --max-file-size flag.
func scanConfig(skipPath string, maxSizeFlag int64) (types.ScanConfig, error) {
	cfg := types.ScanConfig{
		SkipFolders: viper.GetStringSlice("skip_folders"),
		SkipFiles:   viper.GetStringSlice("skip_files"),
		MaxFileSize: viper.GetInt64("max_file_size_bytes"),
	}
	if skipPath != "" {
		loaded, err := scan.LoadSkipFile(skipPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if maxSizeFlag > 0 {
		cfg.MaxFileSize = maxSizeFlag
	}
	return cfg, nil
}

func runPipeline(cmd *cobra.Command, args []string) error {
	inputDir, outputDir := args[0], args[1]

	fontPath, _ := cmd.Flags().GetString("font")
	fontName, _ := cmd.Flags().GetString("fontname")
	genStructure, _ := cmd.Flags().GetBool("generate-structure")
	doMerge, _ := cmd.Flags().GetBool("merge")
	maxSize, _ := cmd.Flags().GetInt64("max-file-size")
	skipPath, _ := cmd.Flags().GetString("skip-config")
	useManifest, _ := cmd.Flags().GetBool("manifest")

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

	scanCfg, err := scanConfig(skipPath, maxSize)
	if err != nil {
		return err
	}
	cfg := types.PipelineConfig{
		Scan:   scanCfg,
		Render: types.RenderConfig{FontPath: fontPath, FontName: fontName},
		Merge:  types.MergeConfig{OutputName: merge.DefaultOutputName},
	}

	individual := filepath.Join(outputDir, individualDir)
	if err := os.MkdirAll(individual, 0o755); err != nil {
		return fmt.Errorf("creating output folder: %w", err)
	}

	files, err := scan.Collect(inputDir, cfg.Scan)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d files to process.\n", len(files))
	log.Info("collected files", "count", len(files), "input", inputDir)

	var store *manifest.Store
	var runID int64
	if useManifest {
		store, err = manifest.Open(filepath.Join(outputDir, manifestFileName))
		if err != nil {
			return err
		}
		defer store.Close()
		if runID, err = store.BeginRun(inputDir, outputDir); err != nil {
			return err
		}
	}

	opts := convert.Options{
		InputRoot:   inputDir,
		OutputRoot:  individual,
		MaxFileSize: cfg.Scan.MaxFileSize,
		NewDocument: func() (convert.Document, error) { return pdfdoc.New(cfg.Render) },
		Log:         log,
	}
	if store != nil {
		opts.Record = func(f scan.File, status convert.Status) {
			outPath := convert.OutputPath(individual, f.RelPath)
			if err := store.RecordFile(runID, f.RelPath, outPath, string(status), f.Size); err != nil {
				log.Error("manifest record failed", "path", f.RelPath, "error", err)
			}
		}
	}

	result := convert.ProcessBatch(opts, files, os.Stdout)
	fmt.Printf("Individual PDFs have been saved to %q.\n", individual)
	log.Info("individual PDFs saved", "folder", individual)

	if store != nil {
		if err := store.FinishRun(runID, result.Total(), result.Converted, result.Failed); err != nil {
			log.Error("manifest finish failed", "error", err)
		}
	}

	if genStructure {
		fmt.Println("Generating folder structure PDF...")
		log.Info("generating folder structure PDF")
		if err := writeStructurePDF(inputDir, outputDir, cfg.Render, log); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write folder structure PDF: %v\n", err)
			log.Error("failed to write folder structure PDF", "error", err)
		}
	}

	if doMerge {
		fmt.Printf("Merging individual PDFs into %q...\n", cfg.Merge.OutputName)
		log.Info("merging individual PDFs", "output", cfg.Merge.OutputName)
		res, err := merge.Merge(individual, cfg.Merge, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Merge failed: %v\n", err)
			log.Error("merge failed", "error", err)
		} else {
			fmt.Printf("Merged %d of %d PDFs into %q.\n", res.Merged, res.Found, res.Output)
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
