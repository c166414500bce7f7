package sievego

import (
	"time"

	"github.com/hupe1980/sievego/internal/engine"
	"github.com/hupe1980/sievego/internal/simd"
)

// DefaultPrimeBank returns a copy of the default bank of small primes.
func DefaultPrimeBank() []uint32 {
	bank := make([]uint32, len(engine.DefaultBank))
	copy(bank, engine.DefaultBank)
	return bank
}

// Stats is a snapshot of the work counters accumulated by a Sieve.
type Stats struct {
	// GroupsVectorized counts full groups screened by the Barrett kernels.
	GroupsVectorized uint64
	// GroupsDegraded counts full groups resolved scalar because a lane
	// exceeded the 32-bit range.
	GroupsDegraded uint64
	// ScalarResolved counts candidates whose verdict came from trial
	// division.
	ScalarResolved uint64
}

// Sieve batch-classifies uint64 candidates as prime or composite.
//
// A Sieve is not safe for concurrent use; classification is single-threaded
// and data-parallel only within one lane group.
type Sieve struct {
	engine  *engine.Engine
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Sieve with the given options.
func New(opts ...Option) (*Sieve, error) {
	o := &options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(o)
	}

	engOpts := []engine.Option{engine.WithLogger(o.logger.Logger)}
	if o.bank != nil {
		engOpts = append(engOpts, engine.WithBank(o.bank))
	}
	if o.groupSizeSet {
		engOpts = append(engOpts, engine.WithGroupSize(o.groupSize))
	}
	if o.thresholdSet {
		engOpts = append(engOpts, engine.WithScalarThreshold(o.scalarThreshold))
	}

	eng, err := engine.New(engOpts...)
	if err != nil {
		return nil, translateError(err)
	}

	return &Sieve{
		engine:  eng,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// Classify returns one verdict per candidate, same length, same order, true
// meaning prime. Every uint64 is a valid candidate; 0 and 1 classify as
// non-prime. An empty input yields an empty result.
func (s *Sieve) Classify(candidates []uint64) []bool {
	start := time.Now()
	before := s.engine.Stats().ScalarResolved

	results := s.engine.Process(candidates)

	scalar := s.engine.Stats().ScalarResolved - before
	s.metrics.RecordClassify(len(candidates), int(scalar), time.Since(start))
	return results
}

// ClassifySet classifies candidates and returns the indices of the primes as
// a ResultSet.
func (s *Sieve) ClassifySet(candidates []uint64) *ResultSet {
	return newResultSet(s.Classify(candidates))
}

// Stats returns a snapshot of the accumulated work counters.
func (s *Sieve) Stats() Stats {
	es := s.engine.Stats()
	return Stats{
		GroupsVectorized: es.GroupsVectorized,
		GroupsDegraded:   es.GroupsDegraded,
		ScalarResolved:   es.ScalarResolved,
	}
}

// PrimeBank returns a copy of the bank this Sieve screens against.
func (s *Sieve) PrimeBank() []uint32 {
	bank := make([]uint32, len(s.engine.Bank()))
	copy(bank, s.engine.Bank())
	return bank
}

// IsPrime reports whether n is prime using scalar trial division, the same
// oracle the vectorized path defers to.
func IsPrime(n uint64) bool {
	return engine.TrialDivision(n)
}

// ActiveISA returns the name of the SIMD instruction set the Barrett kernels
// were selected for at startup ("generic", "neon", "sve2", "avx2", "avx512").
func ActiveISA() string {
	return simd.ActiveISA().String()
}
