// Package sievego batch-classifies 64-bit unsigned integers as prime or
// composite.
//
// The core is a vectorized small-prime sieve: candidates are processed in
// 8-wide lane groups and screened against an ascending bank of small primes
// using Barrett reduction (a division-free modulus with a precomputed
// reciprocal and a single correction step). The sieve can only disprove
// primality; survivors, out-of-range lanes and short batches are resolved
// by deterministic scalar trial division, which is the ground truth for
// every verdict.
//
// # Quick Start
//
//	s, err := sievego.New()
//	if err != nil {
//	    panic(err)
//	}
//	verdicts := s.Classify([]uint64{0, 1, 2, 3, 4, 91, 97})
//	// verdicts: [false false true true false false true]
//
// Verdicts come back in input order, one per candidate, true meaning prime.
// Every uint64 is a valid candidate, including 0 and 1.
//
// # Tuning
//
// The prime bank, group size and scalar threshold are configurable:
//
//	s, err := sievego.New(
//	    sievego.WithPrimeBank([]uint32{2, 3, 5, 7}),
//	    sievego.WithGroupSize(16),
//	    sievego.WithScalarThreshold(32),
//	)
//
// The bank must be strictly ascending; smallest-first maximizes the
// elimination rate. None of the tuning knobs affect verdicts, only how much
// work reaches the scalar oracle.
//
// # Kernels
//
// The Barrett kernels dispatch through function pointers selected at init
// from runtime CPU feature detection (AVX2/AVX-512 on x86-64, NEON/SVE2 on
// ARM64). Set SIEVEGO_SIMD=generic to force the baseline implementation.
package sievego
