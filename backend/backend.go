// Package backend defines the calling convention shared by all 256-bit hash
// backends at the boundary, so callers can swap constructions without changing
// call sites: input bytes in, a caller-owned fixed-size output buffer, a
// status code out.
//
// The sponge-based backends are implemented by this module; BLAKE3 and SHA-256
// are provided by their own libraries and adapted to the convention here.
package backend

import (
	"slices"

	sha256 "github.com/minio/sha256-simd"
	"lukechampine.com/blake3"

	"github.com/porifera/sponge/abi"
)

// Size is the digest size, in bytes, shared by every backend.
const Size = 32

// A Func computes a 256-bit digest of in into out. The output buffer is owned
// by the caller; on a non-zero status its contents are undefined.
type Func func(out *[Size]byte, in []byte) abi.Status

// Keccak256 is the legacy Keccak-256 backend.
func Keccak256(out *[Size]byte, in []byte) abi.Status {
	return abi.Keccak256(out, in)
}

// SHA3 is the FIPS-202 SHA3-256 backend.
func SHA3(out *[Size]byte, in []byte) abi.Status {
	return abi.SHA3_256(out, in)
}

// BLAKE3 is the BLAKE3-256 tree-hash backend.
func BLAKE3(out *[Size]byte, in []byte) abi.Status {
	if out == nil {
		return abi.StatusNullPointer
	}
	*out = blake3.Sum256(in)
	return abi.StatusOK
}

// SHA256 is the FIPS-180 SHA-256 backend, hardware-accelerated where the CPU
// provides SHA extensions.
func SHA256(out *[Size]byte, in []byte) abi.Status {
	if out == nil {
		return abi.StatusNullPointer
	}
	*out = sha256.Sum256(in)
	return abi.StatusOK
}

// Lookup returns the backend registered under name, or (nil, false) if the
// name is unknown.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns the sorted names of all registered backends.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

//nolint:gochecknoglobals // fixed at build time, never mutated
var registry = map[string]Func{
	"keccak256":  Keccak256,
	"sha3-256":   SHA3,
	"blake3-256": BLAKE3,
	"sha256":     SHA256,
}
