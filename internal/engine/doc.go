// Package engine implements the batch sieve: candidates are processed in
// fixed-size lane groups, screened against an ascending bank of small primes
// with the Barrett kernels from internal/simd, and every survivor is resolved
// by scalar trial division. The vector pass only ever disproves primality;
// trial division is the ground truth for all verdicts.
package engine
