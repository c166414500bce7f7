//go:build arm64

package simd

// init installs the unrolled kernels based on the active ISA.
// Runs after capability_arm64.go init() has detected CPU features.
func init() {
	switch activeISA {
	case NEON, SVE2:
		kernelBarrettRemainders = barrettRemaindersUnrolled
		kernelMarkComposites = markCompositesUnrolled
	}
}
