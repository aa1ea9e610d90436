// main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// render flags
	outputFile   string
	styleKey     string
	exportFormat string

	// gallery flags
	galleryDir string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "go-prisma",
	Short: "PRISMA 2020 flow diagram generator",
	Long: `go-prisma renders PRISMA 2020 systematic-review flow diagrams.

It takes a flat JSON object of form fields (counts, per-database source
slots, exclusion reasons, analysis branch labels) plus a style key, and
produces a fixed-resolution raster image. Missing fields render as zero;
an unknown style falls back to the default theme.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [fields.json]",
	Short: "Render one diagram from a JSON field mapping",
	Long: `Renders a flow diagram from the given JSON file: a flat object of
string fields. All fields are optional; with no file at all a skeleton
diagram of zero counts is produced.

The image is written to stdout unless -o is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Render a sample diagram for every registered style",
	Long: `Renders one fixed sample mapping per registered style into numbered
folders under the output directory, plus a combined overview sheet.`,
	RunE: runGallery,
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the registered diagram styles",
	RunE:  runStyles,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (default: stdout)")
	renderCmd.Flags().StringVarP(&styleKey, "style", "s", "", "style key (overrides the mapping's style field)")
	renderCmd.Flags().StringVarP(&exportFormat, "format", "f", "png", "output format (png, jpg/jpeg)")

	galleryCmd.Flags().StringVarP(&galleryDir, "dir", "d", "generated-styles", "output directory")

	rootCmd.AddCommand(renderCmd, galleryCmd, stylesCmd)
}

// loadFields reads the flat field mapping from a JSON file. The mapping is
// forwarded verbatim to the engine; no schema is enforced here.
func loadFields(path string) (Fields, error) {
	if path == "" {
		return Fields{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading fields file %q: %w", path, err)
	}
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing fields JSON %q: %w", path, err)
	}
	return f, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	var fieldsFile string
	if len(args) == 1 {
		fieldsFile = args[0]
	}

	fields, err := loadFields(fieldsFile)
	if err != nil {
		return err
	}
	logger.Debug("fields loaded", zap.String("file", fieldsFile), zap.Int("count", len(fields)))

	data, err := Generate(fields, styleKey, exportFormat)
	if err != nil {
		return err
	}

	if outputFile == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write image to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		// Don't leave a partial image behind.
		os.Remove(outputFile)
		return fmt.Errorf("failed to write output file %q: %w", outputFile, err)
	}
	logger.Info("diagram written",
		zap.String("file", outputFile),
		zap.String("format", exportFormat),
		zap.Int("bytes", len(data)))
	return nil
}

func runGallery(cmd *cobra.Command, args []string) error {
	paths, err := GenerateGallery(galleryDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info("style preview written", zap.String("file", p))
	}
	logger.Info("gallery complete",
		zap.Int("styles", len(paths)),
		zap.String("dir", galleryDir))
	return nil
}

func runStyles(cmd *cobra.Command, args []string) error {
	for _, key := range StyleKeys() {
		st := ResolveStyle(key)
		marker := " "
		if key == DefaultStyleKey {
			marker = "*"
		}
		fmt.Printf("%s %-12s  %-16s  box %s/%s  included %s/%s\n",
			marker, key, st.Name, st.BoxFill, st.BoxEdge, st.IncludedFill, st.IncludedEdge)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
