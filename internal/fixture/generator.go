package fixture

import (
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Progress receives user-facing generation events. The generator never
// formats timestamps itself; presentation belongs to the implementation.
type Progress interface {
	// Stepf reports a major step as a formatted line.
	Stepf(format string, args ...any)
	// Created reports a written fixture with its character count.
	Created(filename string, chars int, description string)
	// Blank emits a visual separator between categories.
	Blank()
}

// NopProgress discards all events.
type NopProgress struct{}

func (NopProgress) Stepf(string, ...any) {}

func (NopProgress) Created(string, int, string) {}

func (NopProgress) Blank() {}

// GenerationError is the single failure kind a run can surface. Any I/O
// error during directory creation or a write aborts the run; files
// already written are left in place.
type GenerationError struct {
	Op  string // operation that failed, e.g. "write basic.js"
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Config holds generator configuration.
type Config struct {
	// OutputDir is where fixtures are written. Created if absent.
	OutputDir string
	// Fs is the target filesystem. Defaults to the OS filesystem.
	Fs afero.Fs
	// Progress receives user-facing events. Defaults to NopProgress.
	Progress Progress
	// Logger receives structured operational logs. Defaults to a nop.
	Logger *zap.Logger
}

// DefaultConfig returns sensible defaults for the given output directory.
func DefaultConfig(outputDir string) Config {
	if outputDir == "" {
		outputDir = "test_files"
	}
	return Config{
		OutputDir: outputDir,
		Fs:        afero.NewOsFs(),
		Progress:  NopProgress{},
		Logger:    zap.NewNop(),
	}
}

// Result summarizes a successful run. It is not persisted anywhere.
type Result struct {
	OutputDir    string
	FilesWritten []string
	// DirEntries is the number of entries in the output directory after
	// the run, including any pre-existing files the run did not touch.
	DirEntries int
	Duration   time.Duration
}

// Generator stamps the fixture catalog into an output directory.
// It is strictly sequential; a run is not resumable and overwrites any
// pre-existing files with the same names.
type Generator struct {
	fs       afero.Fs
	outDir   string
	progress Progress
	logger   *zap.Logger
}

// New creates a generator, filling unset Config fields with defaults.
func New(cfg Config) *Generator {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "test_files"
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Progress == nil {
		cfg.Progress = NopProgress{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Generator{
		fs:       cfg.Fs,
		outDir:   cfg.OutputDir,
		progress: cfg.Progress,
		logger:   cfg.Logger,
	}
}

// OutputDir returns the configured output directory.
func (g *Generator) OutputDir() string { return g.outDir }

// EnsureOutputDir creates the output directory and any missing parents.
// Succeeds silently if the directory already exists.
func (g *Generator) EnsureOutputDir() error {
	if err := g.fs.MkdirAll(g.outDir, 0o755); err != nil {
		return &GenerationError{Op: "create output directory", Err: err}
	}
	return nil
}

// WriteFixture writes one catalog entry into the output directory,
// overwriting any previous content, and returns the resolved path.
func (g *Generator) WriteFixture(spec Spec) (string, error) {
	path := filepath.Join(g.outDir, spec.Filename)
	if err := afero.WriteFile(g.fs, path, []byte(spec.Content), 0o644); err != nil {
		return "", &GenerationError{Op: "write " + spec.Filename, Err: err}
	}
	g.progress.Created(spec.Filename, utf8.RuneCountInString(spec.Content), spec.Description)
	g.logger.Debug("wrote fixture",
		zap.String("file", path),
		zap.Int("bytes", len(spec.Content)),
		zap.String("category", string(spec.Category)))
	return path, nil
}

// WriteSettings serializes the default settings document into the output
// directory as test_settings.json.
func (g *Generator) WriteSettings() error {
	data, err := DefaultSettings().Marshal()
	if err != nil {
		return &GenerationError{Op: "encode " + SettingsFilename, Err: err}
	}
	path := filepath.Join(g.outDir, SettingsFilename)
	if err := afero.WriteFile(g.fs, path, data, 0o644); err != nil {
		return &GenerationError{Op: "write " + SettingsFilename, Err: err}
	}
	g.progress.Stepf("✓ Created test_settings.json - VS Code settings for testing")
	g.logger.Debug("wrote settings", zap.String("file", path), zap.Int("bytes", len(data)))
	return nil
}

// WriteReadme writes the testing-instructions document into the output
// directory as README.md.
func (g *Generator) WriteReadme() error {
	path := filepath.Join(g.outDir, ReadmeFilename)
	if err := afero.WriteFile(g.fs, path, []byte(Readme()), 0o644); err != nil {
		return &GenerationError{Op: "write " + ReadmeFilename, Err: err}
	}
	g.progress.Stepf("✓ Created README.md - Testing instructions")
	g.logger.Debug("wrote readme", zap.String("file", path))
	return nil
}

// GenerateAll runs the full pipeline: output directory, every fixture
// category in fixed order, settings document, README, final count.
// The first failed write aborts the run; nothing is rolled back.
func (g *Generator) GenerateAll() (*Result, error) {
	start := time.Now()

	g.progress.Stepf("=== Starting Test File Generation ===")
	g.progress.Stepf("Output directory: %s", g.absOutDir())
	g.progress.Blank()

	res, err := g.run()
	if err != nil {
		g.progress.Stepf("ERROR: Failed to generate test files: %v", err)
		g.logger.Error("generation failed", zap.Error(err))
		return nil, err
	}
	res.Duration = time.Since(start)

	g.progress.Stepf("=== Test file generation completed ===")
	g.progress.Stepf("Generated %d files in %s", res.DirEntries, g.outDir)
	g.progress.Stepf("Use these files to test the copyright notice extension!")
	g.logger.Info("generation complete",
		zap.Int("files_written", len(res.FilesWritten)),
		zap.Int("dir_entries", res.DirEntries),
		zap.Duration("duration", res.Duration))
	return res, nil
}

func (g *Generator) run() (*Result, error) {
	if err := g.EnsureOutputDir(); err != nil {
		return nil, err
	}

	res := &Result{OutputDir: g.outDir}
	for _, category := range Categories() {
		g.progress.Stepf("%s", Banner(category))
		for _, spec := range ByCategory(category) {
			path, err := g.WriteFixture(spec)
			if err != nil {
				return nil, err
			}
			res.FilesWritten = append(res.FilesWritten, path)
		}
		g.progress.Blank()
	}

	g.progress.Stepf("Generating VS Code settings...")
	if err := g.WriteSettings(); err != nil {
		return nil, err
	}
	res.FilesWritten = append(res.FilesWritten, filepath.Join(g.outDir, SettingsFilename))
	g.progress.Blank()

	g.progress.Stepf("Generating test README...")
	if err := g.WriteReadme(); err != nil {
		return nil, err
	}
	res.FilesWritten = append(res.FilesWritten, filepath.Join(g.outDir, ReadmeFilename))
	g.progress.Blank()

	entries, err := afero.ReadDir(g.fs, g.outDir)
	if err != nil {
		return nil, &GenerationError{Op: "count output directory", Err: err}
	}
	res.DirEntries = len(entries)
	return res, nil
}

func (g *Generator) absOutDir() string {
	abs, err := filepath.Abs(g.outDir)
	if err != nil {
		return g.outDir
	}
	return abs
}
