package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/syllabus/internal/catalog"
	"github.com/pdiddy/syllabus/internal/course"
	"github.com/pdiddy/syllabus/internal/syllabus"
	"github.com/pdiddy/syllabus/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render a course syllabus to a .docx file",
	Long: `Build lays out a course as a Word document with a title, description,
"Professor", "Ementa" and "Calendário" sections, the last holding a
Data/Tópico schedule table.

Without --course the built-in example course is rendered. Without --output
the file is named documento_<YYYYMMDDHHMMSS>.docx from the local time.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("course", "", "path to a YAML course definition (default: built-in example)")
	buildCmd.Flags().String("output", "", "output filename (default: <prefix>_<timestamp>.docx)")
	buildCmd.Flags().String("output-dir", "", "directory for generated documents (default: working directory)")
	buildCmd.Flags().String("file-prefix", syllabus.DefaultFilePrefix, "stem of generated filenames")
	buildCmd.Flags().Bool("no-catalog", false, "do not record the build in the catalog")

	viper.BindPFlag("output_dir", buildCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("file_prefix", buildCmd.Flags().Lookup("file-prefix"))
	viper.BindPFlag("disable_catalog", buildCmd.Flags().Lookup("no-catalog"))

	rootCmd.AddCommand(buildCmd)
}

func buildConfig() types.BuildConfig {
	return types.BuildConfig{
		OutputDir:      viper.GetString("output_dir"),
		FilePrefix:     viper.GetString("file_prefix"),
		CatalogDir:     viper.GetString("catalog_dir"),
		DisableCatalog: viper.GetBool("disable_catalog"),
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	c := course.Example()
	if path, _ := cmd.Flags().GetString("course"); path != "" {
		loaded, err := course.Load(path)
		if err != nil {
			return err
		}
		c = *loaded
	}
	for _, w := range course.Warnings(c) {
		logger.Warn(w)
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	now := time.Now()
	composer := &syllabus.Composer{
		OutputDir:  cfg.OutputDir,
		FilePrefix: cfg.FilePrefix,
		Now:        func() time.Time { return now },
		Out:        cmd.OutOrStdout(),
		Logger:     logger,
	}
	output, _ := cmd.Flags().GetString("output")
	path, err := composer.Compose(c, output)
	if err != nil {
		return err
	}

	if cfg.DisableCatalog {
		return nil
	}
	store, err := catalog.Open(types.CatalogConfig{CatalogDir: cfg.CatalogDir})
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer store.Close()

	entry, err := store.Record(cmd.Context(), catalog.NewEntry(c, path, now))
	if err != nil {
		return err
	}
	logger.Debug("recorded build", "id", entry.ID, "catalog", cfg.CatalogDir)
	return nil
}
