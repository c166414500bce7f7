package engine

// TrialDivision reports whether n is prime by deterministic trial division:
// n < 2 is not prime, 2 is prime, even n are composite, otherwise odd
// divisors are tested up to floor(sqrt(n)).
//
// This is the ground-truth oracle for the whole engine. The divisor bound is
// checked as i <= n/i to stay overflow-safe for the full uint64 range.
func TrialDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
