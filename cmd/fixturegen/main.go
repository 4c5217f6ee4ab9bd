package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"fixturegen/internal/fixture"
	"fixturegen/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fixturegen",
	Short: "Test file generator for the copyright notice extension",
	Long: `fixturegen emits a fixed set of static test files (source snippets,
a settings document, and a README) used to manually exercise the
copyright notice editor extension.

The tool only produces input files; it never invokes the extension.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
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

// generateCmd writes the full fixture set into the output directory
var generateCmd = &cobra.Command{
	Use:   "generate [output-directory]",
	Short: "Generate the test file set",
	Long: `Creates the output directory if needed and writes every fixture in the
catalog, the test_settings.json document, and the testing README.

Existing files with the same names are overwritten. Defaults to
./test_files when no directory is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

// catalogCmd lists the fixture catalog without writing anything
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the fixture catalog without writing files",
	RunE:  runCatalog,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runGenerate performs a full generation run against the output directory
func runGenerate(cmd *cobra.Command, args []string) error {
	outDir := "test_files"
	if len(args) > 0 {
		outDir = args[0]
	}

	cfg := fixture.DefaultConfig(outDir)
	cfg.Progress = logging.NewConsole(cmd.OutOrStdout())
	cfg.Logger = logger

	gen := fixture.New(cfg)
	res, err := gen.GenerateAll()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "\nFailed to generate test files.")
		return err
	}

	abs, absErr := filepath.Abs(res.OutputDir)
	if absErr != nil {
		abs = res.OutputDir
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nTest files generated successfully in: %s\n", abs)
	fmt.Fprintln(cmd.OutOrStdout(), "You can now use these files to test the copyright notice extension!")
	return nil
}

// runCatalog prints every catalog entry plus the two derived documents
func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, category := range fixture.Categories() {
		fmt.Fprintf(out, "%s:\n", category)
		for _, spec := range fixture.ByCategory(category) {
			fmt.Fprintf(out, "  %-24s %5d chars  %s\n",
				spec.Filename, utf8.RuneCountInString(spec.Content), spec.Description)
		}
	}

	settings, err := fixture.DefaultSettings().Marshal()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	fmt.Fprintf(out, "Documents:\n")
	fmt.Fprintf(out, "  %-24s %5d chars  VS Code settings for testing\n",
		fixture.SettingsFilename, utf8.RuneCount(settings))
	fmt.Fprintf(out, "  %-24s %5d chars  Testing instructions\n",
		fixture.ReadmeFilename, utf8.RuneCountInString(fixture.Readme()))
	return nil
}
