// Package rng provides deterministic random number generation for the seed generator.
//
// # Overview
//
// Every consumer of randomness during a seed-generation attempt — the retry
// loop, each world's placement context, each world's spirit-light provider —
// must receive an independently seeded but fully deterministic stream. RNG
// achieves this by deriving a sub-seed with SHA-256 over a parent seed and a
// label, so that the whole derivation tree can be reconstructed from the
// generation's seed string alone.
//
// # Derivation
//
//	root := rng.NewFromSeedString(settings.Seed)
//	world0 := root.Child("world:0")
//	spiritLight0 := world0.Child("spirit_light")
//
// Re-deriving with the same seed string and labels always reproduces the
// same sequences, regardless of call order across unrelated branches of the
// tree.
//
// # Thread safety
//
// RNG instances are NOT thread-safe. Each goroutine must use its own
// instance; derive child RNGs before spawning goroutines and pass them
// explicitly.
package rng
