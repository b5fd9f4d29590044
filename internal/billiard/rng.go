package billiard

import "math/rand"

// defaultRng backs Options.Rng when the caller supplies none. Per spec.md §9
// the spec requires determinism given a fixed seed, not a specific
// algorithm, so callers wanting reproducibility should set Options.Rng to
// their own rand.New(rand.NewSource(seed)) — this package-level fallback
// exists only so Evolve/Bounce never nil-dereference.
var defaultRng = rand.New(rand.NewSource(1))
