package paper

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"gopkg.in/yaml.v3"
)

// Orientation is the page layout of a printed paper.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// defaultBlockCount applies to blocks that leave count unset.
const defaultBlockCount = 10

// PaperConfig describes a whole paper: a level, a title and its blocks.
type PaperConfig struct {
	Level       Level                    `json:"level"`
	Title       string                   `json:"title"`
	Blocks      []problemgen.BlockConfig `json:"blocks"`
	Orientation Orientation              `json:"orientation,omitempty"`
}

// ForLevel returns the unresolved config of a preset level.
func ForLevel(level Level) PaperConfig {
	return PaperConfig{Level: level}
}

// Resolve fills in preset blocks and defaults. Blocks come from the level
// preset only when the config has none and the level is not Custom.
func Resolve(cfg PaperConfig) (PaperConfig, error) {
	if cfg.Level == "" {
		cfg.Level = LevelCustom
	}
	if len(cfg.Blocks) == 0 && cfg.Level != LevelCustom {
		blocks, err := PresetBlocks(cfg.Level)
		if err != nil {
			return cfg, err
		}
		if blocks == nil {
			return cfg, fmt.Errorf("no preset blocks for level %q", cfg.Level)
		}
		cfg.Blocks = blocks
	} else {
		cfg.Blocks = append([]problemgen.BlockConfig(nil), cfg.Blocks...)
	}

	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = fmt.Sprintf("%s Practice Paper", cfg.Level)
	}
	if cfg.Orientation == "" {
		cfg.Orientation = Portrait
	}
	for i := range cfg.Blocks {
		b := &cfg.Blocks[i]
		if b.ID == "" {
			b.ID = fmt.Sprintf("block-%d", i+1)
		}
		if b.Count == 0 {
			b.Count = defaultBlockCount
		}
		if b.Title == "" {
			b.Title = TypeTitle(b.Type)
		}
	}
	return cfg, nil
}

// LoadFile reads a YAML or JSON paper file. See Load.
func LoadFile(path string) (PaperConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return PaperConfig{}, fmt.Errorf("open paper file: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return PaperConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load parses a paper document, validates it against the paper schema and
// resolves defaults. JSON documents are accepted as YAML.
func Load(r io.Reader) (PaperConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return PaperConfig{}, fmt.Errorf("read paper: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return PaperConfig{}, fmt.Errorf("parse paper: %w", err)
	}
	if doc == nil {
		return PaperConfig{}, fmt.Errorf("parse paper: empty document")
	}

	// The schema validator and the decoder both want JSON values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return PaperConfig{}, fmt.Errorf("parse paper: %w", err)
	}
	if err := validateJSON(raw); err != nil {
		return PaperConfig{}, err
	}

	var cfg PaperConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return PaperConfig{}, fmt.Errorf("decode paper: %w", err)
	}
	return Resolve(cfg)
}
