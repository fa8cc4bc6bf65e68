package istringconst

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig writes header into a temporary directory and returns a configuration pointing to it.
func testConfig(t *testing.T, header string) Config {
	dir := t.TempDir()
	cfg := DefaultConfig().WithPaths(filepath.Join(dir, DefaultHeader), filepath.Join(dir, DefaultOutput))
	require.NoError(t, os.WriteFile(cfg.HeaderPath, []byte(header), 0644))
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := testConfig(t, testHeader)
	res, err := Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, 5, res.NumDeclarations)
	require.True(t, res.Changed)
	require.Equal(t, cfg.OutputPath, res.OutputPath)

	first, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Contains(t, string(first), "IString IStringConst::kAlthand;\n")
	info, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())

	// Second run: same bytes, and the file is not rewritten.
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(cfg.OutputPath, past, past))
	res, err = Generate(cfg)
	require.NoError(t, err)
	require.False(t, res.Changed)
	second, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, first, second)
	info, err = os.Stat(cfg.OutputPath)
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(past))
}

func TestGenerate_OverwritesOutput(t *testing.T) {
	cfg := testConfig(t, "static grinliz::IString kFoo;\n")
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("hand edited, to be lost\n"), 0644))
	res, err := Generate(cfg)
	require.NoError(t, err)
	require.True(t, res.Changed)
	contents, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	want, err := Render(NewDeclarations("Foo"), cfg)
	require.NoError(t, err)
	require.Equal(t, want, contents)
}

func TestGenerate_Errors(t *testing.T) {
	// Missing header: no output is created.
	dir := t.TempDir()
	cfg := DefaultConfig().WithPaths(filepath.Join(dir, DefaultHeader), filepath.Join(dir, DefaultOutput))
	_, err := Generate(cfg)
	require.Error(t, err)
	require.NoFileExists(t, cfg.OutputPath)

	// Malformed header: the previous output is left untouched.
	cfg = testConfig(t, "static grinliz::IString kFoo;\nstatic grinliz::IString k\n")
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("previous\n"), 0644))
	_, err = Generate(cfg)
	require.ErrorIs(t, err, ErrMalformedDeclaration)
	contents, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, "previous\n", string(contents))

	// Unwritable output: the directory doesn't exist.
	cfg = testConfig(t, testHeader)
	cfg.OutputPath = filepath.Join(filepath.Dir(cfg.OutputPath), "missing_dir", DefaultOutput)
	_, err = Generate(cfg)
	require.Error(t, err)

	// Invalid configuration.
	cfg.Prefix = ""
	_, err = Generate(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCheck(t *testing.T) {
	cfg := testConfig(t, testHeader)

	// Missing output is stale.
	res, err := Check(cfg)
	require.ErrorIs(t, err, ErrStale)
	require.True(t, res.Changed)
	require.NoFileExists(t, cfg.OutputPath)

	_, err = Generate(cfg)
	require.NoError(t, err)
	res, err = Check(cfg)
	require.NoError(t, err)
	require.False(t, res.Changed)

	// Header changed after generation.
	require.NoError(t, os.WriteFile(cfg.HeaderPath, []byte(testHeader+"static grinliz::IString kNew;\n"), 0644))
	_, err = Check(cfg)
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, err.Error(), cfg.OutputPath)
}

func TestGenerate_Print(t *testing.T) {
	cfg := testConfig(t, testHeader)
	var buf bytes.Buffer
	gen := New(cfg).WithMode(ModePrint)
	gen.Stdout = &buf
	res, err := gen.Generate()
	require.NoError(t, err)
	require.Equal(t, 5, res.NumDeclarations)
	require.NoFileExists(t, cfg.OutputPath)

	want, err := Render(NewDeclarations("Main", "Trigger", "Target", "Althand", "Pair[2]"), cfg)
	require.NoError(t, err)
	require.Equal(t, string(want), buf.String())
}

func TestGenerate_UnknownMode(t *testing.T) {
	cfg := testConfig(t, testHeader)
	_, err := New(cfg).WithMode(Mode(17)).Generate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Mode(17)")
}

func TestGenerateTree(t *testing.T) {
	root := t.TempDir()
	headers := map[string]string{
		"xegame":            "static grinliz::IString kMain;\n",
		"game/script":       "static grinliz::IString kGold;\nstatic grinliz::IString kRing;\n",
		"game/script/empty": "// no constants\n",
	}
	for dir, header := range headers {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, DefaultHeader), []byte(header), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "other.h"), []byte(testHeader), 0644))

	results, err := New(DefaultConfig()).GenerateTree(root)
	require.NoError(t, err)
	require.Len(t, results, len(headers))
	counts := make(map[string]int)
	for _, res := range results {
		counts[filepath.Dir(res.OutputPath)] = res.NumDeclarations
		require.FileExists(t, res.OutputPath)
		require.Equal(t, DefaultOutput, filepath.Base(res.OutputPath))
	}
	require.Equal(t, map[string]int{
		filepath.Join(root, "xegame"):            1,
		filepath.Join(root, "game/script"):       2,
		filepath.Join(root, "game/script/empty"): 0,
	}, counts)
	require.NoFileExists(t, filepath.Join(root, DefaultOutput))

	// Everything is up-to-date now.
	_, err = New(DefaultConfig()).WithMode(ModeCheck).GenerateTree(root)
	require.NoError(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultOutput)
	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0600))
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(contents))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Renaming over a directory fails, and the temporary file is removed.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "subdir", "x"), nil, 0644))
	require.Error(t, WriteFileAtomic(filepath.Join(dir, "subdir"), []byte("x"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{DefaultOutput, "subdir"}, names)
}
