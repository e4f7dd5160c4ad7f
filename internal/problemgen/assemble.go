package problemgen

import "github.com/rs/zerolog"

// Assembler builds blocks of unique questions.
type Assembler struct {
	cfg Config
	log zerolog.Logger
}

// New creates an Assembler with the given config. Zero retry ceilings are
// replaced by the defaults.
func New(cfg Config) *Assembler {
	def := DefaultConfig()
	if cfg.MaxSlotAttempts <= 0 {
		cfg.MaxSlotAttempts = def.MaxSlotAttempts
	}
	if cfg.MaxSynthRetries <= 0 {
		cfg.MaxSynthRetries = def.MaxSynthRetries
	}
	return &Assembler{
		cfg: cfg,
		log: cfg.Logger.With().Str("component", "problemgen").Logger(),
	}
}

// Assemble builds a block with the default config.
func Assemble(cfg BlockConfig, startID int, seed int64) (GeneratedBlock, error) {
	return New(DefaultConfig()).Assemble(cfg, startID, seed)
}

// AssembleUnseeded builds a block from the ambient random source with the
// default config. The result cannot be replayed.
func AssembleUnseeded(cfg BlockConfig, startID int) (GeneratedBlock, error) {
	return New(DefaultConfig()).AssembleUnseeded(cfg, startID)
}

// Assemble builds exactly ExpectedCount(cfg) questions numbered from
// startID. Slot i retries with seed + r·10000 + i·1000 + startID·100 while
// its signature collides with an earlier question of the block.
func (a *Assembler) Assemble(cfg BlockConfig, startID int, seed int64) (GeneratedBlock, error) {
	seeded := func(slot int, seed int64) func(int) Stream {
		return func(k int) Stream {
			return NewSeededStream(seed+int64(k)*retryStride, int64(slot))
		}
	}
	return a.assemble(cfg, startID, seed, NewSeededStream(seed, int64(startID)), seeded)
}

// AssembleUnseeded is Assemble over the ambient random source.
func (a *Assembler) AssembleUnseeded(cfg BlockConfig, startID int) (GeneratedBlock, error) {
	ambient := func(int, int64) func(int) Stream {
		return func(int) Stream { return AmbientStream() }
	}
	return a.assemble(cfg, startID, 0, AmbientStream(), ambient)
}

func (a *Assembler) assemble(cfg BlockConfig, startID int, seed int64, tables Stream, streams func(slot int, seed int64) func(int) Stream) (GeneratedBlock, error) {
	s, err := lookup(cfg.Type)
	if err != nil {
		return GeneratedBlock{}, err
	}
	if cfg.Type == TypeVedicTables {
		return GeneratedBlock{Config: cfg, Questions: a.tables(cfg, startID, tables)}, nil
	}

	p, err := Resolve(cfg.Type, cfg.Constraints)
	if err != nil {
		return GeneratedBlock{}, err
	}
	n := ExpectedCount(cfg)
	questions := make([]Question, 0, n)
	seen := make(signatureSet, n)

	for i := range n {
		slot := startID + i
		var q Question
		accepted := false
		for r := range a.cfg.MaxSlotAttempts {
			s2 := seed
			if r > 0 {
				s2 = seed + int64(r)*10000 + int64(i)*1000 + int64(startID)*100
			}
			q = a.synthesizeTotal(slot, i, cfg.Type, s, p, s2, streams(slot, s2))
			if seen.add(SignatureOf(q)) {
				accepted = true
				break
			}
		}
		if !accepted {
			a.log.Debug().
				Str("block", cfg.ID).
				Str("type", cfg.Type.String()).
				Int("slot", slot).
				Str("signature", string(SignatureOf(q))).
				Msg("accepting duplicate after exhausting slot attempts")
		}
		questions = append(questions, q)
	}
	return GeneratedBlock{Config: cfg, Questions: questions}, nil
}

// tables lays out a whole times table, one row per question.
func (a *Assembler) tables(cfg BlockConfig, startID int, s Stream) []Question {
	var base int64
	if n := cfg.Constraints.TableNumber; n != nil {
		base = int64(clamp(*n, 1, 99))
	} else {
		base = int64(s.Float64()*99) + 1
	}

	rows := tableRows(cfg)
	questions := make([]Question, rows)
	for k := range rows {
		q := tableRow(base, int64(k+1))
		q.ID, q.Type = startID+k, TypeVedicTables
		questions[k] = q
	}
	return questions
}
