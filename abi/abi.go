// Package abi is the stable boundary surface of the library: a semantic
// version, CPU capability flags, and status-coded one-shot hash entry points.
//
// The hashing entry points follow a caller-owns-everything convention: input
// and output buffers are provided and owned by the caller for their full
// lifetime, and no allocation occurs on this surface. Signatures are never
// changed within a minor or patch release, only appended.
package abi

import (
	"fmt"

	"github.com/porifera/sponge"
)

// Version is the library's semantic version triple.
type Version struct {
	Major, Minor, Patch uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// LibraryVersion returns the version of the boundary surface.
func LibraryVersion() Version {
	return Version{Major: 1, Minor: 0, Patch: 0}
}

// A Status reports the outcome of a boundary call. On any non-zero status the
// output buffer contents are undefined and must not be used.
type Status int32

const (
	// StatusOK means the operation succeeded.
	StatusOK Status = iota
	// StatusNullPointer means a required buffer was absent.
	StatusNullPointer
	// StatusSizeMismatch means a supplied buffer does not match the size the
	// operation expects.
	StatusSizeMismatch
	// StatusUnsupported means the requested variant is not supported on this
	// build.
	StatusUnsupported
	// StatusInternal exists for defensive completeness. No path in a correct
	// build returns it; seeing it indicates a bug, not a transient condition.
	StatusInternal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullPointer:
		return "null required pointer"
	case StatusSizeMismatch:
		return "invalid length or size mismatch"
	case StatusUnsupported:
		return "unsupported on this build"
	case StatusInternal:
		return "unexpected internal error"
	default:
		return fmt.Sprintf("unknown status (%d)", int32(s))
	}
}

// A Variant names a hash construction dispatched through Hash.
type Variant uint8

const (
	VariantKeccak256 Variant = iota
	VariantSHA3_224
	VariantSHA3_256
	VariantSHA3_384
	VariantSHA3_512
)

// Size returns the variant's digest size in bytes, or 0 if the variant is
// unknown.
func (v Variant) Size() int {
	if p, ok := v.params(); ok {
		return p.Size
	}
	return 0
}

func (v Variant) params() (sponge.Params, bool) {
	switch v {
	case VariantKeccak256:
		return sponge.LegacyKeccak256, true
	case VariantSHA3_224:
		return sponge.SHA3_224, true
	case VariantSHA3_256:
		return sponge.SHA3_256, true
	case VariantSHA3_384:
		return sponge.SHA3_384, true
	case VariantSHA3_512:
		return sponge.SHA3_512, true
	default:
		return sponge.Params{}, false
	}
}

// Hash writes the variant's digest of in to out, which must be exactly the
// variant's digest size. in may be nil only when it has no bytes. Every call
// is independent and reentrant; no allocation is performed.
func Hash(v Variant, out, in []byte) Status {
	p, ok := v.params()
	if !ok {
		return StatusUnsupported
	}
	if out == nil {
		return StatusNullPointer
	}
	if len(out) != p.Size {
		return StatusSizeMismatch
	}

	c := p.New()
	c.Absorb(in)
	c.Finalize()
	c.Squeeze(out)
	return StatusOK
}

// Keccak256 writes the legacy Keccak-256 digest of in to out.
func Keccak256(out *[32]byte, in []byte) Status {
	if out == nil {
		return StatusNullPointer
	}
	return Hash(VariantKeccak256, out[:], in)
}

// SHA3_224 writes the SHA3-224 digest of in to out.
func SHA3_224(out *[28]byte, in []byte) Status {
	if out == nil {
		return StatusNullPointer
	}
	return Hash(VariantSHA3_224, out[:], in)
}

// SHA3_256 writes the SHA3-256 digest of in to out.
func SHA3_256(out *[32]byte, in []byte) Status {
	if out == nil {
		return StatusNullPointer
	}
	return Hash(VariantSHA3_256, out[:], in)
}

// SHA3_384 writes the SHA3-384 digest of in to out.
func SHA3_384(out *[48]byte, in []byte) Status {
	if out == nil {
		return StatusNullPointer
	}
	return Hash(VariantSHA3_384, out[:], in)
}

// SHA3_512 writes the SHA3-512 digest of in to out.
func SHA3_512(out *[64]byte, in []byte) Status {
	if out == nil {
		return StatusNullPointer
	}
	return Hash(VariantSHA3_512, out[:], in)
}
