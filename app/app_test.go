package app_test

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/app"
	"github.com/katalvlaran/wordgrid/config"
)

// newConfig returns a validated config for a literal CA/XB grid with a
// dictionary and result directory under a temp dir.
func newConfig(t *testing.T, words string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "swedish.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte(words), 0o644))

	cfg := config.Default()
	cfg.GridRows = []string{"CA", "XB"}
	cfg.DictionaryPath = dictPath
	cfg.OutputDir = filepath.Join(dir, "result")
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRun_FindsWords(t *testing.T) {
	cfg := newConfig(t, "cab\nabc\nbax\ncabx\nxyz\n")
	cfg.WriteAll = true
	out := &bytes.Buffer{}

	res, err := app.NewApp(out, io.Discard, cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 48, res.Paths)
	assert.Len(t, res.Candidates, 48, "all letters distinct, so every path is distinct")
	assert.Equal(t, []string{"abc", "bax", "cab", "cabx"}, res.Words)
	assert.Contains(t, out.String(), "Using grid:\nC A\nX B\n")
	assert.Contains(t, out.String(), "Algorithm took:")
	assert.Contains(t, out.String(), "Found 4 words")

	valid, err := os.ReadFile(filepath.Join(cfg.OutputDir, config.AllValidFile))
	require.NoError(t, err)
	assert.Equal(t, "abc\nbax\ncab\ncabx\n", string(valid))

	all, err := os.ReadFile(filepath.Join(cfg.OutputDir, config.AllCombinationsFile))
	require.NoError(t, err)
	assert.Equal(t, 48, bytes.Count(all, []byte("\n")))
}

func TestRun_NoMatchesIsNotAnError(t *testing.T) {
	cfg := newConfig(t, "hej\n")
	out := &bytes.Buffer{}

	res, err := app.NewApp(out, io.Discard, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Words)
	assert.Contains(t, out.String(), "Found 0 words")

	valid, err := os.ReadFile(filepath.Join(cfg.OutputDir, config.AllValidFile))
	require.NoError(t, err)
	assert.Empty(t, valid)
}

func TestRun_MissingDictionary(t *testing.T) {
	cfg := newConfig(t, "")
	cfg.DictionaryPath = filepath.Join(t.TempDir(), "missing.txt")

	_, err := app.NewApp(io.Discard, io.Discard, cfg).Run(context.Background())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRun_RandomGridIsSeeded(t *testing.T) {
	run := func() string {
		cfg := newConfig(t, "")
		cfg.GridRows = nil
		cfg.Rows, cfg.Cols = 3, 3
		cfg.Seed = 42
		cfg.WriteValid = false
		res, err := app.NewApp(io.Discard, io.Discard, cfg).Run(context.Background())
		require.NoError(t, err)
		return res.Grid.String()
	}
	assert.Equal(t, run(), run())
}

func TestRun_JSONLogs(t *testing.T) {
	cfg := newConfig(t, "cab\n")
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"
	logs := &bytes.Buffer{}

	_, err := app.NewApp(io.Discard, logs, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"msg":"Enumeration complete."`)
	assert.Contains(t, logs.String(), `"msg":"Dictionary loaded."`)
	assert.Contains(t, logs.String(), `"list":"all_valid.txt"`)
	assert.Contains(t, logs.String(), `"stage":"grid"`)
}
