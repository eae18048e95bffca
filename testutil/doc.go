// Package testutil provides testing utilities for atomicbits.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source for generating
// initial word values.
//
// # Random Words
//
//	rng := testutil.NewRNG(seed)
//	seeds := testutil.Words[uint16](rng, 8) // 0, all ones, then random patterns
package testutil
