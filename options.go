package sievego

type options struct {
	bank            []uint32
	groupSize       int
	groupSizeSet    bool
	scalarThreshold int
	thresholdSet    bool
	logger          *Logger
	metrics         MetricsCollector
}

// Option configures Sieve constructor behavior.
type Option func(*options)

// WithPrimeBank sets the bank of small primes the vectorized pass screens
// against. Entries must be strictly ascending; smallest-first maximizes the
// early elimination rate. The default bank holds the 16 primes up to 53.
func WithPrimeBank(bank []uint32) Option {
	return func(o *options) {
		o.bank = bank
	}
}

// WithGroupSize sets how many candidates are screened per vectorized pass.
// Must be a positive multiple of the lane width (4). Default 8, two 4-wide
// lane halves per group.
func WithGroupSize(size int) Option {
	return func(o *options) {
		o.groupSize = size
		o.groupSizeSet = true
	}
}

// WithScalarThreshold sets the batch length below which Classify skips
// vectorization and resolves everything by trial division. Default 16.
func WithScalarThreshold(threshold int) Option {
	return func(o *options) {
		o.scalarThreshold = threshold
		o.thresholdSet = true
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed,
// NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
