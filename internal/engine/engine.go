package engine

import (
	"log/slog"
	"math"

	"github.com/hupe1980/sievego/internal/simd"
)

const (
	// DefaultGroupSize is the number of candidates screened per vectorized
	// pass, two register-shaped halves of simd.LaneWidth lanes each.
	DefaultGroupSize = simd.BlockWidth

	// DefaultScalarThreshold is the batch length below which the kernel
	// setup cost is not worth paying and everything goes scalar.
	DefaultScalarThreshold = 16

	// MaxBankPrime bounds admissible bank entries. Beyond it the uint32
	// Barrett magic and the single-correction step are no longer honest.
	MaxBankPrime = 1<<16 - 1
)

// DefaultBank holds the default small primes, ascending. Order does not
// affect correctness, but smallest-first maximizes the elimination rate.
var DefaultBank = []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

// Stats counts work done by an Engine. Counters accumulate across Process
// calls; the Engine is single-threaded, so reads are only meaningful between
// calls.
type Stats struct {
	// GroupsVectorized counts full groups screened by the Barrett kernels.
	GroupsVectorized uint64
	// GroupsDegraded counts full groups sent to scalar because a lane
	// exceeded the 32-bit range.
	GroupsDegraded uint64
	// ScalarResolved counts candidates whose verdict came from trial
	// division, including sieve survivors and all degraded or tail work.
	ScalarResolved uint64
}

// Engine classifies batches of uint64 candidates as prime or composite.
type Engine struct {
	bank      []uint32
	magics    []uint32
	groupSize int
	scalarMin int
	logger    *slog.Logger
	stats     Stats
}

// Option defines a configuration option for the Engine.
type Option func(*Engine)

// WithBank sets the prime bank. Entries must be strictly ascending and in
// [2, MaxBankPrime].
func WithBank(bank []uint32) Option {
	return func(e *Engine) {
		e.bank = bank
	}
}

// WithGroupSize sets the vectorized group size. Must be a positive multiple
// of simd.LaneWidth.
func WithGroupSize(size int) Option {
	return func(e *Engine) {
		e.groupSize = size
	}
}

// WithScalarThreshold sets the batch length below which Process skips
// vectorization entirely.
func WithScalarThreshold(threshold int) Option {
	return func(e *Engine) {
		e.scalarMin = threshold
	}
}

// WithLogger sets the logger for the engine.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine, validates its configuration and precomputes the
// Barrett magic for every bank entry.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		bank:      DefaultBank,
		groupSize: DefaultGroupSize,
		scalarMin: DefaultScalarThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}

	if len(e.bank) == 0 {
		return nil, ErrEmptyBank
	}
	for i, p := range e.bank {
		if p < 2 || p > MaxBankPrime {
			return nil, &ErrPrimeOutOfRange{Prime: p}
		}
		if i > 0 && p <= e.bank[i-1] {
			return nil, &ErrBankNotAscending{Index: i}
		}
	}
	if e.groupSize <= 0 || e.groupSize%simd.LaneWidth != 0 {
		return nil, &ErrInvalidGroupSize{Size: e.groupSize}
	}
	if e.scalarMin < 0 {
		return nil, &ErrInvalidThreshold{Threshold: e.scalarMin}
	}

	e.magics = make([]uint32, len(e.bank))
	for i, p := range e.bank {
		e.magics[i] = simd.Magic(p)
	}

	if e.logger != nil {
		e.logger.Debug("sieve engine ready",
			"bank_size", len(e.bank),
			"group_size", e.groupSize,
			"scalar_threshold", e.scalarMin,
			"isa", simd.ActiveISA().String(),
		)
	}
	return e, nil
}

// Process classifies candidates and returns one verdict per candidate, same
// length, same order, true meaning prime. Every uint64 is a valid candidate;
// 0 and 1 are classified non-prime.
func (e *Engine) Process(candidates []uint64) []bool {
	results := make([]bool, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	if len(candidates) < e.scalarMin {
		e.processScalar(candidates, results)
		return results
	}

	// Scratch buffers are reused across groups; each group's pass is
	// independent of every other group's.
	lanes := make([]uint32, e.groupSize)
	mask := make([]byte, e.groupSize)

	i := 0
	for ; i+e.groupSize <= len(candidates); i += e.groupSize {
		group := candidates[i : i+e.groupSize]

		// Range guard: a lane beyond 32 bits degrades the whole group
		// to scalar. A policy decision, not an error.
		if !narrow(group, lanes) {
			e.stats.GroupsDegraded++
			e.processScalar(group, results[i:i+e.groupSize])
			continue
		}

		clear(mask)
		for j, p := range e.bank {
			simd.MarkComposites(lanes, e.magics[j], p, mask)
		}
		e.stats.GroupsVectorized++

		// The sieve only disproves primality: unmarked lanes still owe
		// their verdict to the oracle.
		for j, m := range mask {
			if m == 0 {
				results[i+j] = TrialDivision(group[j])
				e.stats.ScalarResolved++
			}
		}
	}

	if tail := candidates[i:]; len(tail) > 0 {
		e.processScalar(tail, results[i:])
	}

	if e.logger != nil {
		e.logger.Debug("batch processed",
			"count", len(candidates),
			"groups_vectorized", e.stats.GroupsVectorized,
			"groups_degraded", e.stats.GroupsDegraded,
		)
	}
	return results
}

// Stats returns a snapshot of the accumulated counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Bank returns the configured prime bank. Callers must not mutate it.
func (e *Engine) Bank() []uint32 {
	return e.bank
}

func (e *Engine) processScalar(candidates []uint64, results []bool) {
	for i, n := range candidates {
		results[i] = TrialDivision(n)
	}
	e.stats.ScalarResolved += uint64(len(candidates))
}

// narrow copies group into the 32-bit lane buffer, reporting false if any
// value does not fit.
func narrow(group []uint64, lanes []uint32) bool {
	for _, v := range group {
		if v > math.MaxUint32 {
			return false
		}
	}
	for j, v := range group {
		lanes[j] = uint32(v)
	}
	return true
}
