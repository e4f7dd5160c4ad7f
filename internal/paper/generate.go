package paper

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options tunes paper generation.
type Options struct {
	// Concurrency bounds the number of blocks assembled at once.
	// 0 means GOMAXPROCS.
	Concurrency int

	Logger zerolog.Logger

	// Engine overrides the question engine. Nil means the default
	// Assembler logging through Logger.
	Engine problemgen.Generator
}

// Preview is one generated paper together with what is needed to replay it.
type Preview struct {
	ID            string                      `json:"id"`
	Seed          int64                       `json:"seed"`
	EngineVersion string                      `json:"engineVersion"`
	Config        PaperConfig                 `json:"config"`
	Blocks        []problemgen.GeneratedBlock `json:"blocks"`
	CreatedAt     time.Time                   `json:"createdAt"`
}

// QuestionCount returns the number of questions across all blocks.
func (p *Preview) QuestionCount() int {
	n := 0
	for _, b := range p.Blocks {
		n += len(b.Questions)
	}
	return n
}

// Generate assembles every block of a resolved config with seed. Question
// IDs run on from block to block. Blocks are assembled concurrently; the
// output is identical to a sequential run.
func Generate(ctx context.Context, cfg PaperConfig, seed int64, opts Options) ([]problemgen.GeneratedBlock, error) {
	if len(cfg.Blocks) == 0 {
		return nil, &ConfigError{Violations: []string{"/blocks: paper has no blocks"}}
	}

	engine := opts.Engine
	if engine == nil {
		ecfg := problemgen.DefaultConfig()
		ecfg.Logger = opts.Logger
		engine = problemgen.New(ecfg)
	}
	log := opts.Logger.With().Str("component", "paper").Int64("seed", seed).Logger()

	// Start IDs are fixed up front so block order never depends on
	// scheduling.
	starts := make([]int, len(cfg.Blocks))
	next := 1
	for i, b := range cfg.Blocks {
		if !b.Type.Valid() {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.ID, &problemgen.UnsupportedTypeError{Tag: b.Type.String()})
		}
		starts[i] = next
		next += problemgen.ExpectedCount(b)
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	out := make([]problemgen.GeneratedBlock, len(cfg.Blocks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, b := range cfg.Blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			block, err := engine.Assemble(b, starts[i], seed)
			if err != nil {
				return fmt.Errorf("block %d (%s): %w", i+1, b.ID, err)
			}
			out[i] = block
			log.Debug().
				Str("block", b.ID).
				Str("type", b.Type.String()).
				Int("start_id", starts[i]).
				Int("questions", len(block.Questions)).
				Msg("block assembled")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("blocks", len(out)).Int("questions", next-1).Msg("paper generated")
	return out, nil
}

// NewPreview resolves and validates cfg, then generates it with seed.
func NewPreview(ctx context.Context, cfg PaperConfig, seed int64, opts Options) (*Preview, error) {
	resolved, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	if err := Validate(resolved); err != nil {
		return nil, err
	}

	blocks, err := Generate(ctx, resolved, seed, opts)
	if err != nil {
		return nil, err
	}

	return &Preview{
		ID:            uuid.NewString(),
		Seed:          seed,
		EngineVersion: problemgen.EngineVersion,
		Config:        resolved,
		Blocks:        blocks,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
