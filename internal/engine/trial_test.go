package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrialDivision(t *testing.T) {
	tests := []struct {
		n    uint64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{9, false},
		{53, true},
		{91, false}, // 7 * 13
		{97, true},
		{7919, true},
		{999983, true},
		{1000000, false},
		{1000003, true},
		{2147483647, true},  // 2^31 - 1, Mersenne prime
		{4294967295, false}, // 2^32 - 1 = 3 * 5 * 17 * 257 * 65537
		{4294967296, false}, // 2^32
		{4294967311, true},  // smallest prime above 2^32
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TrialDivision(tt.n), "n=%d", tt.n)
	}
}

func TestTrialDivisionSquares(t *testing.T) {
	// The divisor bound is inclusive: perfect squares of primes must be
	// caught at i == sqrt(n).
	for _, p := range []uint64{3, 5, 7, 11, 65537, 1000003} {
		assert.False(t, TrialDivision(p*p), "n=%d", p*p)
	}
}
