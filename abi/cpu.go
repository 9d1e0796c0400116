package abi

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// CPUFlags reports which hardware features relevant to hashing are available.
// The flags describe capability only; the portable permutation is the single
// code path in this build, and anyone wiring an accelerated path must verify
// it byte-for-byte against keccak.F1600.
type CPUFlags struct {
	AVX2 bool // x86 256-bit vector extensions
	SHA  bool // x86 SHA instruction set
	NEON bool // ARM64 advanced SIMD
	SHA3 bool // ARM64 SHA-3 instructions (EOR3/RAX1/XAR/BCAX)
}

// QueryCPU returns the current CPU's capability flags. It is side-effect free
// and cheap enough to call per operation: detection happens once at process
// start.
func QueryCPU() CPUFlags {
	return CPUFlags{
		AVX2: cpuid.CPU.Supports(cpuid.AVX2),
		SHA:  cpuid.CPU.Supports(cpuid.SHA),
		NEON: cpu.ARM64.HasASIMD,
		SHA3: cpu.ARM64.HasSHA3,
	}
}
