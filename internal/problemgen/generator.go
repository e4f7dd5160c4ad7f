package problemgen

// Generator produces blocks of questions.
type Generator interface {
	// Assemble builds the block described by cfg, numbering questions from
	// startID. The same (cfg, startID, seed) always yields the same block.
	Assemble(cfg BlockConfig, startID int, seed int64) (GeneratedBlock, error)
}

var _ Generator = (*Assembler)(nil)
