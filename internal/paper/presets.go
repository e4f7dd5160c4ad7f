package paper

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// vedicBlockCount is the question count of each generated Vedic block.
const vedicBlockCount = 10

var (
	presetsOnce sync.Once
	presets     map[Level][]problemgen.BlockConfig
	presetsErr  error
)

// Presets returns the preset blocks of every level except Custom.
// The returned map and slices are shared; callers must not modify them.
func Presets() (map[Level][]problemgen.BlockConfig, error) {
	presetsOnce.Do(func() {
		presets, presetsErr = loadPresets(presetsYAML)
	})
	return presets, presetsErr
}

// PresetBlocks returns a copy of the preset blocks for level, or nil for
// Custom and unknown levels.
func PresetBlocks(level Level) ([]problemgen.BlockConfig, error) {
	all, err := Presets()
	if err != nil {
		return nil, err
	}
	blocks := all[level]
	if blocks == nil {
		return nil, nil
	}
	out := make([]problemgen.BlockConfig, len(blocks))
	copy(out, blocks)
	return out, nil
}

func loadPresets(data []byte) (map[Level][]problemgen.BlockConfig, error) {
	var raw map[string][]problemgen.BlockConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	out := make(map[Level][]problemgen.BlockConfig, len(raw)+4)
	for name, blocks := range raw {
		level, err := ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("presets: %w", err)
		}
		out[level] = blocks
	}
	for _, level := range levels {
		if n := level.VedicLevel(); n > 0 {
			out[level] = vedicBlocks(n)
		}
	}
	return out, nil
}

// vedicBlocks builds one default-constraint block per pattern of a Vedic
// level, in registry order.
func vedicBlocks(n int) []problemgen.BlockConfig {
	var blocks []problemgen.BlockConfig
	for _, t := range problemgen.AllTypes() {
		if t.Family() != problemgen.FamilyVedic || t.Level() != n {
			continue
		}
		blocks = append(blocks, problemgen.BlockConfig{
			ID:    fmt.Sprintf("v%d-%d", n, len(blocks)+1),
			Type:  t,
			Count: vedicBlockCount,
			Title: TypeTitle(t),
		})
	}
	return blocks
}

// TypeTitle turns a type tag into a heading, e.g. "vedic_multiply_by_12_19"
// becomes "Multiply By 12-19".
func TypeTitle(t problemgen.QuestionType) string {
	words := strings.Split(strings.TrimPrefix(t.String(), "vedic_"), "_")
	var b strings.Builder
	for i, w := range words {
		if w == "" {
			continue
		}
		if i > 0 {
			if isNumber(w) && isNumber(words[i-1]) {
				b.WriteByte('-')
			} else {
				b.WriteByte(' ')
			}
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func isNumber(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}
