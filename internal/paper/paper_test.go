package paper

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("ab-3")
	require.NoError(t, err)
	assert.Equal(t, Level("AB-3"), l)

	_, err = ParseLevel("AB-11")
	assert.Error(t, err)

	assert.Equal(t, 2, Level("Vedic-Level-2").VedicLevel())
	assert.Equal(t, 0, LevelJunior.VedicLevel())
	assert.Len(t, Levels(), 17)
}

func TestPresets(t *testing.T) {
	all, err := Presets()
	require.NoError(t, err)

	for _, l := range Levels() {
		if l == LevelCustom {
			assert.Empty(t, all[l])
			continue
		}
		assert.NotEmpty(t, all[l], "level %s", l)
	}
	assert.Len(t, all[LevelJunior], 3)
	assert.Len(t, all["AB-5"], 10)
	assert.Len(t, all[LevelAdvanced], 8)

	first := all["AB-4"][6]
	assert.Equal(t, "ab4-7", first.ID)
	assert.Equal(t, problemgen.TypeDivision, first.Type)
	require.NotNil(t, first.Constraints.DividendDigits)
	assert.Equal(t, 2, *first.Constraints.DividendDigits)
}

func TestPresets_VedicCoverEveryPattern(t *testing.T) {
	all, err := Presets()
	require.NoError(t, err)

	covered := make(map[problemgen.QuestionType]bool)
	for n := 1; n <= 4; n++ {
		for _, b := range all[Level("Vedic-Level-"+string(rune('0'+n)))] {
			assert.Equal(t, n, b.Type.Level())
			covered[b.Type] = true
		}
	}
	for _, typ := range problemgen.AllTypes() {
		if typ.Family() == problemgen.FamilyVedic {
			assert.True(t, covered[typ], "%s has no preset block", typ)
		}
	}
}

func TestPresetBlocks_ReturnsCopy(t *testing.T) {
	a, err := PresetBlocks(LevelJunior)
	require.NoError(t, err)
	a[0].Title = "changed"

	b, err := PresetBlocks(LevelJunior)
	require.NoError(t, err)
	assert.Equal(t, "Direct Add/Sub", b[0].Title)
}

func TestTypeTitle(t *testing.T) {
	assert.Equal(t, "Multiply By 12-19", TypeTitle(problemgen.TypeVedicMultiplyBy12To19))
	assert.Equal(t, "Square Root", TypeTitle(problemgen.TypeSquareRoot))
}

func TestResolve(t *testing.T) {
	cfg, err := Resolve(ForLevel("AB-2"))
	require.NoError(t, err)
	assert.Equal(t, "AB-2 Practice Paper", cfg.Title)
	assert.Equal(t, Portrait, cfg.Orientation)
	assert.Len(t, cfg.Blocks, 10)

	custom, err := Resolve(PaperConfig{
		Title:  "Homework",
		Blocks: []problemgen.BlockConfig{{Type: problemgen.TypeAddition}},
	})
	require.NoError(t, err)
	assert.Equal(t, LevelCustom, custom.Level)
	assert.Equal(t, "Homework", custom.Title)
	assert.Equal(t, "block-1", custom.Blocks[0].ID)
	assert.Equal(t, 10, custom.Blocks[0].Count)
	assert.Equal(t, "Addition", custom.Blocks[0].Title)
}

func TestResolve_ExplicitBlocksWin(t *testing.T) {
	cfg, err := Resolve(PaperConfig{
		Level:  LevelJunior,
		Blocks: []problemgen.BlockConfig{{ID: "x", Type: problemgen.TypeGCD, Count: 4}},
	})
	require.NoError(t, err)
	require.Len(t, cfg.Blocks, 1)
	assert.Equal(t, problemgen.TypeGCD, cfg.Blocks[0].Type)
}

func TestValidate(t *testing.T) {
	for _, l := range Levels() {
		if l == LevelCustom {
			continue
		}
		cfg, err := Resolve(ForLevel(l))
		require.NoError(t, err)
		assert.NoError(t, Validate(cfg), "level %s", l)
	}
}

func TestValidate_Violations(t *testing.T) {
	cfg, err := Resolve(PaperConfig{
		Blocks: []problemgen.BlockConfig{
			{Type: problemgen.TypeAddition, Count: 500},
			{Type: problemgen.TypeVedicTables, Constraints: problemgen.Constraints{TableNumber: problemgen.Ptr(150)}},
		},
	})
	require.NoError(t, err)

	err = Validate(cfg)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Len(t, cerr.Violations, 2)
	joined := strings.Join(cerr.Violations, "\n")
	assert.Contains(t, joined, "/blocks/0/count")
	assert.Contains(t, joined, "/blocks/1/constraints/tableNumber")
}

func TestValidate_CrossField(t *testing.T) {
	cfg, err := Resolve(PaperConfig{
		Blocks: []problemgen.BlockConfig{{
			Type: problemgen.TypePercentage,
			Constraints: problemgen.Constraints{
				PercentageMin: problemgen.Ptr(80),
				PercentageMax: problemgen.Ptr(20),
			},
		}},
	})
	require.NoError(t, err)

	var cerr *ConfigError
	require.ErrorAs(t, Validate(cfg), &cerr)
	assert.Contains(t, cerr.Violations[0], "percentageMin 80 exceeds percentageMax 20")
}

func TestValidate_Widths(t *testing.T) {
	cfg, err := Resolve(PaperConfig{
		Blocks: []problemgen.BlockConfig{
			{Type: problemgen.TypeAddition, Constraints: problemgen.Constraints{Digits: problemgen.Ptr(25)}},
			{Type: problemgen.TypeMultiplication, Constraints: problemgen.Constraints{
				MultiplicandDigits: problemgen.Ptr(20),
				MultiplierDigits:   problemgen.Ptr(20),
			}},
			{Type: problemgen.TypeSquareRoot, Constraints: problemgen.Constraints{RootDigits: problemgen.Ptr(18)}},
		},
	})
	require.NoError(t, err)

	err = Validate(cfg)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, problemgen.ErrWidth)
	require.Len(t, cerr.Widths, 2)
	assert.Equal(t, "digits", cerr.Widths[0].Field)
	assert.Equal(t, 17, cerr.Widths[0].Max)
	assert.Equal(t, "multiplicandDigits+multiplierDigits", cerr.Widths[1].Field)
	assert.Equal(t, []string{
		"/blocks/0/constraints/digits: 25 exceeds the limit of 17 for addition",
		"/blocks/1/constraints/multiplicandDigits+multiplierDigits: 40 exceeds the limit of 18 for multiplication",
	}, cerr.Violations)

	_, err = NewPreview(context.Background(), cfg, 1, Options{})
	assert.ErrorIs(t, err, problemgen.ErrWidth)
}

func TestLoad_YAML(t *testing.T) {
	doc := `
level: Custom
title: Friday drill
blocks:
  - type: multiplication
    count: 5
    constraints: {multiplicandDigits: 3, multiplierDigits: 2}
  - type: vedic_tables
    constraints: {tableNumber: 7, rows: 12}
`
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Friday drill", cfg.Title)
	require.Len(t, cfg.Blocks, 2)
	assert.Equal(t, problemgen.TypeMultiplication, cfg.Blocks[0].Type)
	assert.Equal(t, 3, *cfg.Blocks[0].Constraints.MultiplicandDigits)
	assert.Equal(t, 10, cfg.Blocks[1].Count)
	assert.Equal(t, 7, *cfg.Blocks[1].Constraints.TableNumber)
}

func TestLoad_JSON(t *testing.T) {
	doc := `{"level": "AB-1", "orientation": "landscape"}`
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, Landscape, cfg.Orientation)
	assert.Len(t, cfg.Blocks, 10)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown type", `{"blocks": [{"type": "vedic_vinculum"}]}`},
		{"unknown field", `{"blocks": [{"type": "addition", "colour": "red"}]}`},
		{"unknown level", `{"level": "AB-42"}`},
		{"bad rows", `{"blocks": [{"type": "addition", "constraints": {"rows": 1}}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			var cerr *ConfigError
			assert.ErrorAs(t, err, &cerr)
		})
	}

	_, err := Load(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDeriveSeed(t *testing.T) {
	cfg, err := Resolve(ForLevel("AB-3"))
	require.NoError(t, err)

	a, err := DeriveSeed(cfg)
	require.NoError(t, err)
	b, err := DeriveSeed(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, int64(0))
	assert.Less(t, a, int64(seedSpace))

	cfg.Blocks[0].Count++
	c, err := DeriveSeed(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRandomSeed(t *testing.T) {
	for range 100 {
		s := RandomSeed()
		assert.GreaterOrEqual(t, s, int64(0))
		assert.Less(t, s, int64(seedSpace))
	}
}

func TestGenerate_SequentialIDsAcrossBlocks(t *testing.T) {
	cfg, err := Resolve(PaperConfig{
		Blocks: []problemgen.BlockConfig{
			{Type: problemgen.TypeAddition, Count: 5},
			{Type: problemgen.TypeVedicTables, Count: 1, Constraints: problemgen.Constraints{Rows: problemgen.Ptr(12)}},
			{Type: problemgen.TypeDivision, Count: 3},
		},
	})
	require.NoError(t, err)

	blocks, err := Generate(context.Background(), cfg, 42, Options{Concurrency: 3})
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	id := 1
	for _, b := range blocks {
		for _, q := range b.Questions {
			assert.Equal(t, id, q.ID)
			id++
		}
	}
	assert.Equal(t, 21, id)
}

func TestGenerate_ConcurrencyDoesNotChangeOutput(t *testing.T) {
	cfg, err := Resolve(ForLevel("AB-6"))
	require.NoError(t, err)

	seq, err := Generate(context.Background(), cfg, 7, Options{Concurrency: 1})
	require.NoError(t, err)
	par, err := Generate(context.Background(), cfg, 7, Options{Concurrency: 8})
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(context.Background(), PaperConfig{}, 1, Options{})
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)

	bad := PaperConfig{Blocks: []problemgen.BlockConfig{{Type: problemgen.QuestionType(999), Count: 1}}}
	_, err = Generate(context.Background(), bad, 1, Options{})
	assert.ErrorIs(t, err, problemgen.ErrUnsupportedType)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg, err := Resolve(ForLevel(LevelJunior))
	require.NoError(t, err)
	_, err = Generate(ctx, cfg, 1, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPreview_Replay(t *testing.T) {
	ctx := context.Background()
	p, err := NewPreview(ctx, ForLevel("Vedic-Level-1"), 2024, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, problemgen.EngineVersion, p.EngineVersion)
	assert.Positive(t, p.QuestionCount())

	again, err := NewPreview(ctx, p.Config, p.Seed, Options{})
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, again.ID)
	assert.Equal(t, p.Blocks, again.Blocks)
}

type failingEngine struct{ calls int }

func (f *failingEngine) Assemble(cfg problemgen.BlockConfig, startID int, seed int64) (problemgen.GeneratedBlock, error) {
	f.calls++
	return problemgen.GeneratedBlock{}, errors.New("engine down")
}

func TestGenerate_EngineError(t *testing.T) {
	cfg, err := Resolve(ForLevel("AB-1"))
	require.NoError(t, err)

	eng := &failingEngine{}
	_, err = Generate(context.Background(), cfg, 1, Options{Engine: eng, Concurrency: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine down")
	assert.Contains(t, err.Error(), "block 1")
	assert.Equal(t, 1, eng.calls, "the group stops after the first failure")
}
