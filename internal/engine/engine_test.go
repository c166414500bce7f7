package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	require.NoError(t, err)
	return e
}

func assertMatchesOracle(t *testing.T, e *Engine, candidates []uint64) {
	t.Helper()
	results := e.Process(candidates)
	require.Len(t, results, len(candidates))
	for i, n := range candidates {
		assert.Equal(t, TrialDivision(n), results[i], "n=%d at index %d", n, i)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"EmptyBank", []Option{WithBank(nil)}, ErrEmptyBank},
		{"NotAscending", []Option{WithBank([]uint32{2, 5, 3})}, &ErrBankNotAscending{Index: 2}},
		{"Duplicate", []Option{WithBank([]uint32{2, 3, 3})}, &ErrBankNotAscending{Index: 2}},
		{"PrimeZero", []Option{WithBank([]uint32{0, 2})}, &ErrPrimeOutOfRange{Prime: 0}},
		{"PrimeOne", []Option{WithBank([]uint32{1, 2})}, &ErrPrimeOutOfRange{Prime: 1}},
		{"PrimeTooLarge", []Option{WithBank([]uint32{2, 1 << 16})}, &ErrPrimeOutOfRange{Prime: 1 << 16}},
		{"GroupSizeZero", []Option{WithGroupSize(0)}, &ErrInvalidGroupSize{Size: 0}},
		{"GroupSizeOffLane", []Option{WithGroupSize(6)}, &ErrInvalidGroupSize{Size: 6}},
		{"NegativeThreshold", []Option{WithScalarThreshold(-1)}, &ErrInvalidThreshold{Threshold: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			require.Error(t, err)
			assert.Equal(t, tt.want.Error(), err.Error())
		})
	}
}

func TestNewDefaults(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, DefaultBank, e.Bank())
}

func TestProcessEmpty(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.Process(nil))
	assert.Empty(t, e.Process([]uint64{}))
}

func TestProcessSmallBatch(t *testing.T) {
	// Below the scalar threshold: pure trial division.
	e := newTestEngine(t)
	got := e.Process([]uint64{0, 1, 2, 3, 4})
	assert.Equal(t, []bool{false, false, true, true, false}, got)
	assert.Equal(t, uint64(0), e.Stats().GroupsVectorized)
}

func TestProcessSingle(t *testing.T) {
	e := newTestEngine(t)
	// 97 is prime but above the bank's max entry, so it must survive the
	// sieve and hit scalar resolution; 91 = 7*13 is eliminated in-bank.
	assert.Equal(t, []bool{true}, e.Process([]uint64{97}))
	assert.Equal(t, []bool{false}, e.Process([]uint64{91}))
}

func TestProcessBankSelfEntries(t *testing.T) {
	// Bank entries must never flag themselves composite. 16 candidates
	// crosses the scalar threshold, so this exercises the vector path.
	candidates := make([]uint64, 0, len(DefaultBank))
	for _, p := range DefaultBank {
		candidates = append(candidates, uint64(p))
	}
	require.Len(t, candidates, 16)

	e := newTestEngine(t)
	results := e.Process(candidates)
	for i, r := range results {
		assert.True(t, r, "bank prime %d misclassified", candidates[i])
	}
	assert.Equal(t, uint64(2), e.Stats().GroupsVectorized)
}

func TestProcessGroupBoundaries(t *testing.T) {
	// Lengths straddling the group size must agree with the oracle,
	// including the scalar tail.
	for _, length := range []int{7, 8, 9, 15, 16, 17, 24, 25, 31, 32, 33} {
		candidates := make([]uint64, length)
		for i := range candidates {
			candidates[i] = uint64(i) + 89
		}
		e := newTestEngine(t, WithScalarThreshold(0))
		assertMatchesOracle(t, e, candidates)
	}
}

func TestProcessRangeGuard(t *testing.T) {
	// A group mixing >32-bit values with small ones degrades to scalar
	// and must still classify every lane correctly.
	candidates := []uint64{
		4294967311, 2, 91, 4294967296, 97, 1 << 40, 53, 0,
		3, 4, 5, 6, 7, 8, 9, 10,
	}
	e := newTestEngine(t)
	assertMatchesOracle(t, e, candidates)

	s := e.Stats()
	assert.Equal(t, uint64(1), s.GroupsDegraded)
	assert.Equal(t, uint64(1), s.GroupsVectorized)
}

func TestProcessSequentialFromMillion(t *testing.T) {
	candidates := make([]uint64, 20)
	for i := range candidates {
		candidates[i] = 1_000_000 + uint64(i)
	}
	e := newTestEngine(t)
	assertMatchesOracle(t, e, candidates)
}

func TestProcessRandomAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	candidates := make([]uint64, 512)
	for i := range candidates {
		switch i % 8 {
		case 0:
			// force occasional range-guard degrades with values whose
			// trial division stays cheap
			candidates[i] = (uint64(rng.Uint32()) << 16) * 2
		default:
			candidates[i] = uint64(rng.Uint32())
		}
	}
	e := newTestEngine(t)
	assertMatchesOracle(t, e, candidates)
}

func TestProcessCustomBank(t *testing.T) {
	// A two-entry bank still produces correct verdicts; it just eliminates
	// fewer candidates before the oracle.
	e := newTestEngine(t, WithBank([]uint32{2, 3}))
	candidates := make([]uint64, 32)
	for i := range candidates {
		candidates[i] = uint64(i)
	}
	assertMatchesOracle(t, e, candidates)
}

func TestProcessCustomGroupSize(t *testing.T) {
	for _, size := range []int{4, 8, 12, 16} {
		e := newTestEngine(t, WithGroupSize(size), WithScalarThreshold(0))
		candidates := make([]uint64, 50)
		for i := range candidates {
			candidates[i] = uint64(3*i + 1)
		}
		assertMatchesOracle(t, e, candidates)
	}
}

func TestProcessScalarThreshold(t *testing.T) {
	// Exactly at the threshold the vector path engages; one below it the
	// whole batch goes scalar.
	at := make([]uint64, DefaultScalarThreshold)
	below := make([]uint64, DefaultScalarThreshold-1)
	for i := range at {
		at[i] = uint64(i)
	}
	for i := range below {
		below[i] = uint64(i)
	}

	e := newTestEngine(t)
	e.Process(below)
	assert.Equal(t, uint64(0), e.Stats().GroupsVectorized)

	e.Process(at)
	assert.Equal(t, uint64(2), e.Stats().GroupsVectorized)
}

func TestStatsScalarResolved(t *testing.T) {
	e := newTestEngine(t)
	// 17 candidates: two vector groups plus one scalar tail element.
	candidates := make([]uint64, 17)
	for i := range candidates {
		candidates[i] = uint64(i + 2)
	}
	results := e.Process(candidates)
	for i, r := range results {
		require.Equal(t, TrialDivision(candidates[i]), r)
	}

	// Every unmasked lane plus the tail went through the oracle.
	s := e.Stats()
	assert.Equal(t, uint64(2), s.GroupsVectorized)
	assert.GreaterOrEqual(t, s.ScalarResolved, uint64(1))
	assert.LessOrEqual(t, s.ScalarResolved, uint64(len(candidates)))
}

func BenchmarkProcess(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	candidates := make([]uint64, 4096)
	for i := range candidates {
		candidates[i] = uint64(rng.Uint32())
	}
	e, err := New()
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(candidates) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process(candidates)
	}
}

func BenchmarkProcessScalarOnly(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	candidates := make([]uint64, 4096)
	for i := range candidates {
		candidates[i] = uint64(rng.Uint32())
	}
	e, err := New(WithScalarThreshold(1 << 30))
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(candidates) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process(candidates)
	}
}
