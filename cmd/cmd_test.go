package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
)

// resetFlags clears flag values left behind by an earlier Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MATHPAPER_LOG_LEVEL", "error")
	t.Setenv("MATHPAPER_LOG_FORMAT", "json")

	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func decodePreview(t *testing.T, out string) paper.Preview {
	t.Helper()
	var p paper.Preview
	require.NoError(t, json.Unmarshal([]byte(out), &p), out)
	return p
}

func TestPreviewHistoryReplay(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")

	out, err := execute(t, "preview", "--db", db, "--level", "AB-2", "--seed", "1234", "--json")
	require.NoError(t, err)
	orig := decodePreview(t, out)
	assert.Equal(t, int64(1234), orig.Seed)
	assert.Equal(t, paper.Level("AB-2"), orig.Config.Level)
	assert.Equal(t, problemgen.EngineVersion, orig.EngineVersion)
	require.NotEmpty(t, orig.ID)

	out, err = execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, orig.ID)
	assert.Contains(t, out, "AB-2")

	out, err = execute(t, "replay", "--db", db, orig.ID, "--json")
	require.NoError(t, err)
	replayed := decodePreview(t, out)
	assert.Equal(t, orig.ID, replayed.ID)
	assert.Equal(t, orig.Seed, replayed.Seed)
	assert.Equal(t, orig.Blocks, replayed.Blocks)

	out, err = execute(t, "replay", "--db", db, "latest", "--json")
	require.NoError(t, err)
	assert.Equal(t, orig.ID, decodePreview(t, out).ID)
}

func TestPreview_PrintsSeedAndID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "journal.db")
	out, err := execute(t, "preview", "--db", db, "--level", "Junior", "--seed", "7", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Junior Practice Paper")
	assert.Contains(t, out, "Seed: 7")
	assert.Contains(t, out, "Preview: ")
	assert.NotContains(t, out, "Answer Key")
}

func TestPreview_RequiresSource(t *testing.T) {
	_, err := execute(t, "preview", "--db", filepath.Join(t.TempDir(), "j.db"))
	require.Error(t, err)
}

func TestPreview_UnknownLevel(t *testing.T) {
	_, err := execute(t, "preview", "--db", filepath.Join(t.TempDir(), "j.db"), "--level", "AB-11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
}

func TestReplay_NotFound(t *testing.T) {
	_, err := execute(t, "replay", "--db", filepath.Join(t.TempDir(), "j.db"), "no-such-id")
	require.Error(t, err)
}

func TestGenerate_DerivedSeedIsStable(t *testing.T) {
	first, err := execute(t, "generate", "--level", "AB-5", "--format", "json")
	require.NoError(t, err)
	second, err := execute(t, "generate", "--level", "AB-5", "--format", "json")
	require.NoError(t, err)

	a, b := decodePreview(t, first), decodePreview(t, second)
	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, a.Blocks, b.Blocks)

	resolved, err := paper.Resolve(paper.ForLevel("AB-5"))
	require.NoError(t, err)
	want, err := paper.DeriveSeed(resolved)
	require.NoError(t, err)
	assert.Equal(t, want, a.Seed)
}

func TestGenerate_PaperFileToOut(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "drill.yaml")
	require.NoError(t, os.WriteFile(src, []byte(`
title: Table drill
blocks:
  - type: vedic_tables
    constraints: {tableNumber: 6, rows: 5}
`), 0o644))
	dst := filepath.Join(dir, "drill.txt")

	_, err := execute(t, "generate", "--paper", src, "--seed", "3", "--out", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Table drill")
	assert.Contains(t, text, "6 × 5 =")
	assert.Contains(t, text, "Answer Key")
	assert.Contains(t, text, "5) 30")
	assert.NotContains(t, text, "\x1b[")
}

func TestGenerate_RejectsFormat(t *testing.T) {
	_, err := execute(t, "generate", "--level", "Junior", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "AB-10")
	assert.Contains(t, out, "Vedic-Level-4")
	assert.NotContains(t, out, "Custom")

	out, err = execute(t, "presets", "ab-1")
	require.NoError(t, err)
	assert.Contains(t, out, "AB-1")
	assert.Contains(t, out, "add_sub")
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types", "--family", "vedic")
	require.NoError(t, err)
	assert.Contains(t, out, "vedic_multiply_by_11")
	assert.NotContains(t, out, "\nadd_sub ")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mathpaper")
	assert.Contains(t, out, problemgen.EngineVersion)
}

func TestSameMajor(t *testing.T) {
	assert.True(t, sameMajor("v1.0.0", "v1.4.2"))
	assert.False(t, sameMajor("v1.0.0", "v2.0.0"))
	assert.False(t, sameMajor("1.0.0", "v1.0.0"))
	assert.False(t, sameMajor("", "v1.0.0"))
}
