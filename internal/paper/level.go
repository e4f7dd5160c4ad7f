package paper

import (
	"fmt"
	"slices"
	"strings"
)

// Level names a paper difficulty. Every level except Custom has preset
// blocks.
type Level string

const (
	LevelCustom   Level = "Custom"
	LevelJunior   Level = "Junior"
	LevelAdvanced Level = "Advanced"
)

// levels is the display order.
var levels = []Level{
	LevelCustom,
	LevelJunior,
	"AB-1", "AB-2", "AB-3", "AB-4", "AB-5",
	"AB-6", "AB-7", "AB-8", "AB-9", "AB-10",
	LevelAdvanced,
	"Vedic-Level-1", "Vedic-Level-2", "Vedic-Level-3", "Vedic-Level-4",
}

// Levels returns every known level in display order.
func Levels() []Level {
	return slices.Clone(levels)
}

// ParseLevel matches s against the known levels, ignoring case.
func ParseLevel(s string) (Level, error) {
	for _, l := range levels {
		if strings.EqualFold(string(l), s) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// VedicLevel returns 1-4 for the Vedic levels and 0 otherwise.
func (l Level) VedicLevel() int {
	var n int
	if _, err := fmt.Sscanf(string(l), "Vedic-Level-%d", &n); err != nil || n < 1 || n > 4 {
		return 0
	}
	return n
}

func (l Level) String() string { return string(l) }
