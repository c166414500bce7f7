package simd

// LaneWidth is the number of lanes in one register-shaped half. The unrolled
// kernels process two halves per block, giving the 8-wide logical batch.
const LaneWidth = 4

// BlockWidth is the logical batch width of the unrolled kernels.
const BlockWidth = 2 * LaneWidth

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override with the unrolled dual-lane versions when a
// SIMD-capable ISA is active.
var (
	kernelBarrettRemainders = barrettRemaindersGeneric
	kernelMarkComposites    = markCompositesGeneric
)

// Magic returns the Barrett reciprocal for p: floor((2^32 + p - 1) / p).
//
// Valid only for the small primes the engine admits into its bank.
// p must be non-zero; the engine validates the bank before calling.
func Magic(p uint32) uint32 {
	return uint32(((uint64(1) << 32) + uint64(p) - 1) / uint64(p))
}

// BarrettRemainders fills rem[i] with the Barrett-reduced value of n[i] mod p
// using the precomputed magic for p: q = hi32(n*magic), r = n - q*p, followed
// by the single conditional subtraction.
//
// The quotient estimate can overshoot by one for n on the order of
// 2^32/(p - 2^32 mod p); the remainder then wraps and stays >= p, so a zero
// result still occurs exactly when p divides n. Callers that need the true
// remainder rather than a divisibility screen must keep n below that bound.
//
// SAFETY: Assumes len(rem) >= len(n). Caller MUST ensure lengths match.
func BarrettRemainders(n []uint32, magic, p uint32, rem []uint32) {
	kernelBarrettRemainders(n, magic, p, rem)
}

// MarkComposites ORs 1 into mask[i] for every lane where p divides n[i] and
// n[i] != p. A bank prime never flags itself; already-set mask bytes are
// never cleared.
//
// SAFETY: Assumes len(mask) >= len(n). Caller MUST ensure lengths match.
func MarkComposites(n []uint32, magic, p uint32, mask []byte) {
	kernelMarkComposites(n, magic, p, mask)
}

// barrettReduce is the scalar reference for one lane.
func barrettReduce(n, magic, p uint32) uint32 {
	q := uint32((uint64(n) * uint64(magic)) >> 32)
	r := n - q*p
	if r >= p {
		r -= p
	}
	return r
}

func barrettRemaindersGeneric(n []uint32, magic, p uint32, rem []uint32) {
	for i, v := range n {
		rem[i] = barrettReduce(v, magic, p)
	}
}

func markCompositesGeneric(n []uint32, magic, p uint32, mask []byte) {
	for i, v := range n {
		if barrettReduce(v, magic, p) == 0 && v != p {
			mask[i] = 1
		}
	}
}

// barrettRemaindersUnrolled processes two independent 4-wide halves per
// 8-lane block. Each half is pure straight-line lane arithmetic with no
// cross-lane dependency, the shape the compiler vectorizes into paired
// 128-bit registers.
func barrettRemaindersUnrolled(n []uint32, magic, p uint32, rem []uint32) {
	i := 0
	for ; i+BlockWidth <= len(n); i += BlockWidth {
		// first half
		n0, n1, n2, n3 := n[i], n[i+1], n[i+2], n[i+3]
		q0 := uint32((uint64(n0) * uint64(magic)) >> 32)
		q1 := uint32((uint64(n1) * uint64(magic)) >> 32)
		q2 := uint32((uint64(n2) * uint64(magic)) >> 32)
		q3 := uint32((uint64(n3) * uint64(magic)) >> 32)
		r0, r1, r2, r3 := n0-q0*p, n1-q1*p, n2-q2*p, n3-q3*p
		if r0 >= p {
			r0 -= p
		}
		if r1 >= p {
			r1 -= p
		}
		if r2 >= p {
			r2 -= p
		}
		if r3 >= p {
			r3 -= p
		}
		rem[i], rem[i+1], rem[i+2], rem[i+3] = r0, r1, r2, r3

		// second half
		n4, n5, n6, n7 := n[i+4], n[i+5], n[i+6], n[i+7]
		q4 := uint32((uint64(n4) * uint64(magic)) >> 32)
		q5 := uint32((uint64(n5) * uint64(magic)) >> 32)
		q6 := uint32((uint64(n6) * uint64(magic)) >> 32)
		q7 := uint32((uint64(n7) * uint64(magic)) >> 32)
		r4, r5, r6, r7 := n4-q4*p, n5-q5*p, n6-q6*p, n7-q7*p
		if r4 >= p {
			r4 -= p
		}
		if r5 >= p {
			r5 -= p
		}
		if r6 >= p {
			r6 -= p
		}
		if r7 >= p {
			r7 -= p
		}
		rem[i+4], rem[i+5], rem[i+6], rem[i+7] = r4, r5, r6, r7
	}

	// Handle remainder
	for ; i < len(n); i++ {
		rem[i] = barrettReduce(n[i], magic, p)
	}
}

// markCompositesUnrolled fuses the reduction with the divisibility test and
// self-equality exception, dual 4-wide halves per block like
// barrettRemaindersUnrolled.
func markCompositesUnrolled(n []uint32, magic, p uint32, mask []byte) {
	i := 0
	for ; i+BlockWidth <= len(n); i += BlockWidth {
		n0, n1, n2, n3 := n[i], n[i+1], n[i+2], n[i+3]
		r0 := barrettReduce(n0, magic, p)
		r1 := barrettReduce(n1, magic, p)
		r2 := barrettReduce(n2, magic, p)
		r3 := barrettReduce(n3, magic, p)
		mask[i] |= boolToByte(r0 == 0 && n0 != p)
		mask[i+1] |= boolToByte(r1 == 0 && n1 != p)
		mask[i+2] |= boolToByte(r2 == 0 && n2 != p)
		mask[i+3] |= boolToByte(r3 == 0 && n3 != p)

		n4, n5, n6, n7 := n[i+4], n[i+5], n[i+6], n[i+7]
		r4 := barrettReduce(n4, magic, p)
		r5 := barrettReduce(n5, magic, p)
		r6 := barrettReduce(n6, magic, p)
		r7 := barrettReduce(n7, magic, p)
		mask[i+4] |= boolToByte(r4 == 0 && n4 != p)
		mask[i+5] |= boolToByte(r5 == 0 && n5 != p)
		mask[i+6] |= boolToByte(r6 == 0 && n6 != p)
		mask[i+7] |= boolToByte(r7 == 0 && n7 != p)
	}

	for ; i < len(n); i++ {
		if barrettReduce(n[i], magic, p) == 0 && n[i] != p {
			mask[i] = 1
		}
	}
}

// boolToByte converts a bool to 0 or 1 without branching.
// The compiler typically optimizes this to a conditional move.
func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
