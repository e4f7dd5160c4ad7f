package paper

import (
	"encoding/json"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// seedSpace is the size of the seed range, 2^31.
const seedSpace = 1 << 31

// DeriveSeed hashes the canonical JSON of cfg into a seed in [0, 2^31).
// Canonical JSON has object keys sorted, so equal configs always derive
// the same seed.
func DeriveSeed(cfg PaperConfig) (int64, error) {
	canon, err := canonicalJSON(cfg)
	if err != nil {
		return 0, err
	}
	return int64(xxhash.Sum64(canon) % seedSpace), nil
}

// RandomSeed returns a fresh seed in [0, 2^31).
func RandomSeed() int64 {
	return rand.Int64N(seedSpace)
}

// canonicalJSON re-encodes v through a generic value; encoding/json writes
// map keys in sorted order.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}
