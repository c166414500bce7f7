//go:build amd64

package simd

// init installs the unrolled kernels based on the active ISA.
// Runs after capability_amd64.go init() has detected CPU features.
func init() {
	switch activeISA {
	case AVX2, AVX512:
		kernelBarrettRemainders = barrettRemaindersUnrolled
		kernelMarkComposites = markCompositesUnrolled
	}
}
