package problemgen

import "github.com/rs/zerolog"

// Config controls the behavior of the Assembler.
type Config struct {
	// MaxSlotAttempts is how many times a slot is resynthesized while its
	// signature collides with an earlier question in the block.
	MaxSlotAttempts int

	// MaxSynthRetries is how many validated attempts Synthesize makes
	// before switching to the type's fallback.
	MaxSynthRetries int

	// Validators is the ordered list of validators to run on every
	// synthesized question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// Logger receives fallback and duplicate-acceptance events.
	Logger zerolog.Logger
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxSlotAttempts: 100,
		MaxSynthRetries: 20,
		Validators: []Validator{
			&StructuralValidator{},
			&DigitCountValidator{},
			&NonNegativeValidator{},
			&ExactDivisionValidator{},
			&PerfectPowerValidator{},
			&AnswerBoundsValidator{},
		},
		Logger: zerolog.Nop(),
	}
}
