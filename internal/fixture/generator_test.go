package fixture

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allFilenames is the complete expected output-directory listing.
var allFilenames = []string{
	"basic.js", "with_copyright.js", "different_copyright.js",
	"basic.ts", "with_copyright.ts",
	"basic.ahk", "basic.ahk2", "with_copyright.ahk",
	"basic.py", "with_copyright.py",
	"basic.cpp", "basic.h",
	"config.json", "package.json",
	"basic.html", "basic.css", "basic.sh",
	"test_settings.json", "README.md",
}

// recordingProgress captures events for assertions.
type recordingProgress struct {
	steps   []string
	created []string
	blanks  int
}

func (r *recordingProgress) Stepf(format string, args ...any) {
	r.steps = append(r.steps, fmt.Sprintf(format, args...))
}

func (r *recordingProgress) Created(filename string, chars int, description string) {
	r.created = append(r.created, fmt.Sprintf("%s %d %s", filename, chars, description))
}

func (r *recordingProgress) Blank() { r.blanks++ }

// failFs rejects writes to one filename, passing everything else through.
type failFs struct {
	afero.Fs
	failName string
}

func (f *failFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.failName {
		return nil, fs.ErrPermission
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *failFs) Create(name string) (afero.File, error) {
	if filepath.Base(name) == f.failName {
		return nil, fs.ErrPermission
	}
	return f.Fs.Create(name)
}

func newMemGenerator(outDir string) (*Generator, afero.Fs) {
	memFs := afero.NewMemMapFs()
	cfg := DefaultConfig(outDir)
	cfg.Fs = memFs
	return New(cfg), memFs
}

func TestGenerateAll_WritesAllFiles(t *testing.T) {
	gen, memFs := newMemGenerator("test_files")

	res, err := gen.GenerateAll()
	require.NoError(t, err)
	require.NotNil(t, res)

	for _, name := range allFilenames {
		exists, statErr := afero.Exists(memFs, filepath.Join("test_files", name))
		require.NoError(t, statErr)
		assert.True(t, exists, "%s not written", name)
	}
	assert.Len(t, res.FilesWritten, len(allFilenames))
	assert.Equal(t, len(allFilenames), res.DirEntries)
	assert.Equal(t, "test_files", res.OutputDir)
}

func TestGenerateAll_ByteExactContent(t *testing.T) {
	gen, memFs := newMemGenerator("out")
	_, err := gen.GenerateAll()
	require.NoError(t, err)

	for _, spec := range Catalog() {
		data, readErr := afero.ReadFile(memFs, filepath.Join("out", spec.Filename))
		require.NoError(t, readErr)
		assert.Equal(t, spec.Content, string(data), "content mismatch for %s", spec.Filename)
	}

	settings, err := DefaultSettings().Marshal()
	require.NoError(t, err)
	data, err := afero.ReadFile(memFs, filepath.Join("out", SettingsFilename))
	require.NoError(t, err)
	assert.Equal(t, string(settings), string(data))

	readme, err := afero.ReadFile(memFs, filepath.Join("out", ReadmeFilename))
	require.NoError(t, err)
	assert.Equal(t, Readme(), string(readme))
}

func TestGenerateAll_Idempotent(t *testing.T) {
	gen, memFs := newMemGenerator("out")

	_, err := gen.GenerateAll()
	require.NoError(t, err)

	first := make(map[string]string)
	for _, name := range allFilenames {
		data, readErr := afero.ReadFile(memFs, filepath.Join("out", name))
		require.NoError(t, readErr)
		first[name] = string(data)
	}

	res, err := gen.GenerateAll()
	require.NoError(t, err)
	assert.Equal(t, len(allFilenames), res.DirEntries, "rerun must not accumulate entries")

	for _, name := range allFilenames {
		data, readErr := afero.ReadFile(memFs, filepath.Join("out", name))
		require.NoError(t, readErr)
		assert.Equal(t, first[name], string(data), "rerun changed %s", name)
	}
}

func TestGenerateAll_CountsForeignEntries(t *testing.T) {
	gen, memFs := newMemGenerator("out")
	require.NoError(t, memFs.MkdirAll("out", 0o755))
	require.NoError(t, afero.WriteFile(memFs, filepath.Join("out", "stray.txt"), []byte("x"), 0o644))

	res, err := gen.GenerateAll()
	require.NoError(t, err)
	assert.Equal(t, len(allFilenames)+1, res.DirEntries, "pre-existing files stay and count")
}

func TestGenerateAll_DirCreationFailure(t *testing.T) {
	// A path component that is a regular file makes MkdirAll fail on a
	// real filesystem.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	cfg := DefaultConfig(filepath.Join(blocker, "out"))
	gen := New(cfg)

	res, err := gen.GenerateAll()
	require.Error(t, err)
	assert.Nil(t, res)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "create output directory", genErr.Op)
}

func TestGenerateAll_WriteFailureKeepsEarlierFiles(t *testing.T) {
	memFs := afero.NewMemMapFs()
	cfg := DefaultConfig("out")
	// basic.ts is the fourth fixture; the three JS files land first.
	cfg.Fs = &failFs{Fs: memFs, failName: "basic.ts"}
	gen := New(cfg)

	res, err := gen.GenerateAll()
	require.Error(t, err)
	assert.Nil(t, res)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "write basic.ts", genErr.Op)
	assert.ErrorIs(t, err, fs.ErrPermission)

	for _, name := range []string{"basic.js", "with_copyright.js", "different_copyright.js"} {
		exists, statErr := afero.Exists(memFs, filepath.Join("out", name))
		require.NoError(t, statErr)
		assert.True(t, exists, "%s written before the failure must persist", name)
	}
	exists, statErr := afero.Exists(memFs, filepath.Join("out", SettingsFilename))
	require.NoError(t, statErr)
	assert.False(t, exists, "nothing past the failure point may exist")
}

func TestGenerateAll_ProgressEvents(t *testing.T) {
	rec := &recordingProgress{}
	memFs := afero.NewMemMapFs()
	cfg := DefaultConfig("out")
	cfg.Fs = memFs
	cfg.Progress = rec
	gen := New(cfg)

	_, err := gen.GenerateAll()
	require.NoError(t, err)

	assert.Len(t, rec.created, len(Catalog()), "one Created event per source fixture")
	assert.Equal(t, "basic.js 55 Basic JS without copyright notice", rec.created[0])

	assert.Equal(t, "=== Starting Test File Generation ===", rec.steps[0])
	assert.Contains(t, rec.steps, "Generating JavaScript test files...")
	assert.Contains(t, rec.steps, "Generating JSON files (should be excluded)...")
	assert.Contains(t, rec.steps, "✓ Created test_settings.json - VS Code settings for testing")
	assert.Contains(t, rec.steps, "✓ Created README.md - Testing instructions")
	assert.Contains(t, rec.steps, "=== Test file generation completed ===")
	assert.Contains(t, rec.steps, fmt.Sprintf("Generated %d files in out", len(allFilenames)))

	// One separator after the header, each category, settings, and README.
	assert.Equal(t, len(Categories())+2+1, rec.blanks)
}

func TestWriteFixture_ReturnsResolvedPath(t *testing.T) {
	gen, _ := newMemGenerator("out")
	require.NoError(t, gen.EnsureOutputDir())

	spec := Catalog()[0]
	path, err := gen.WriteFixture(spec)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", spec.Filename), path)
}

func TestNewFillsDefaults(t *testing.T) {
	gen := New(Config{})
	assert.Equal(t, "test_files", gen.OutputDir())
}
