// Package simd provides lane-parallel Barrett reduction kernels for the
// small-prime sieve.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the kernel implementation. On
// SIMD-capable ISAs the dual 4-lane unrolled kernels are installed; their
// straight-line per-lane arithmetic mirrors paired 128-bit registers and is
// written so the compiler can auto-vectorize it. The plain generic kernels
// remain the baseline and the reference for tests. Set SIEVEGO_SIMD=generic
// to force the generic path.
//
// # Operations
//
//   - Magic: Barrett reciprocal precomputation per prime
//   - BarrettRemainders: batch n mod p with the single conditional correction
//   - MarkComposites: fused divisibility test with self-equality exception
package simd
