// Package sponge implements the Keccak sponge construction over the
// Keccak-f[1600] permutation, including the legacy [Keccak] digests, the
// standardized [FIPS 202] SHA-3 digests and SHAKE extendable-output functions,
// and the streaming absorb/finalize/squeeze protocol they share.
//
// A Context is a plain value: it owns its entire 1600-bit state, performs no
// heap allocation, and requires no cleanup. Independent contexts (and the
// one-shot helpers built on them) may be used concurrently without
// coordination; a single Context is not concurrent-safe.
//
// [Keccak]: https://keccak.team
// [FIPS 202]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.202.pdf
package sponge

import (
	"encoding"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/porifera/sponge/internal/keccak"
	"github.com/porifera/sponge/internal/mem"
)

// A Context is a sponge over Keccak-f[1600] with a fixed rate and domain
// separator. The zero value is not usable; construct one with New or
// Params.New.
//
// A Context moves through three phases: absorbing (the initial phase),
// finalized, and squeezing. Absorb may be called any number of times before
// Finalize; Finalize must be called exactly once; Squeeze may be called any
// number of times after Finalize. Calling these out of order is a programming
// error and panics.
type Context struct {
	state     [keccak.Width]byte
	rate      int
	pos       int
	delim     byte
	finalized bool
}

// New returns a Context with the given rate (in bytes) and domain separator.
//
// The rate must be in (0, 200]; the remaining 200-rate bytes of state form the
// capacity and are never exposed. An out-of-range rate is a programming error
// and panics.
func New(rate int, delim byte) Context {
	if rate <= 0 || rate > keccak.Width {
		panic("sponge: rate out of range")
	}
	return Context{rate: rate, delim: delim}
}

// Absorb XORs b into the rate window, permuting whenever the window fills.
//
// The resulting state depends only on the concatenation of all bytes absorbed
// so far, never on how they were split across calls.
func (c *Context) Absorb(b []byte) {
	if c.finalized {
		panic("sponge: cannot absorb after finalize")
	}

	for len(b) > 0 {
		remain := min(len(b), c.rate-c.pos)
		mem.XOR(c.state[c.pos:c.pos+remain], c.state[c.pos:c.pos+remain], b[:remain])
		c.pos += remain
		if c.pos == c.rate {
			c.permute()
		}
		b = b[remain:]
	}
}

// Finalize applies the pad10*1 padding rule — the domain separator at the
// current position and a final 1 bit at the top of the rate window — then
// permutes once, leaving the Context ready to squeeze.
func (c *Context) Finalize() {
	if c.finalized {
		panic("sponge: already finalized")
	}

	c.state[c.pos] ^= c.delim
	c.state[c.rate-1] ^= 0x80
	c.permute()
	c.finalized = true
}

// Squeeze fills out with bytes from the rate window, permuting whenever the
// window empties. It may be called repeatedly for extendable output; squeezing
// k bytes then n-k more yields the same bytes as squeezing n at once.
func (c *Context) Squeeze(out []byte) {
	if !c.finalized {
		panic("sponge: cannot squeeze before finalize")
	}

	for len(out) > 0 {
		remain := min(len(out), c.rate-c.pos)
		copy(out[:remain], c.state[c.pos:c.pos+remain])
		c.pos += remain
		if c.pos == c.rate {
			c.permute()
		}
		out = out[remain:]
	}
}

// Rate returns the Context's rate in bytes.
func (c *Context) Rate() int {
	return c.rate
}

func (c *Context) permute() {
	keccak.F1600(&c.state)
	c.pos = 0
}

func (c *Context) String() string {
	return hex.EncodeToString(c.state[:])
}

// UnmarshalBinary restores a Context from the MarshalBinary format, validating
// the header invariants.
func (c *Context) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return errors.New("sponge: invalid state length")
	}
	rate, pos, delim, phase := int(data[0]), int(data[1]), data[2], data[3]
	if rate <= 0 || rate > keccak.Width {
		return errors.New("sponge: invalid rate")
	}
	if pos >= rate {
		return errors.New("sponge: invalid position")
	}
	if phase > 1 {
		return errors.New("sponge: invalid phase")
	}
	c.rate, c.pos, c.delim, c.finalized = rate, pos, delim, phase == 1
	copy(c.state[:], data[headerSize:])
	return nil
}

// AppendBinary appends the Context's serialized form to b.
func (c *Context) AppendBinary(b []byte) ([]byte, error) {
	phase := byte(0)
	if c.finalized {
		phase = 1
	}
	b = append(b, byte(c.rate), byte(c.pos), c.delim, phase)
	return append(b, c.state[:]...), nil
}

// MarshalBinary serializes the Context: a four-byte header (rate, position,
// domain separator, phase) followed by the 200-byte state.
func (c *Context) MarshalBinary() (data []byte, err error) {
	return c.AppendBinary(make([]byte, 0, marshaledSize))
}

var (
	_ fmt.Stringer               = (*Context)(nil)
	_ encoding.BinaryAppender    = (*Context)(nil)
	_ encoding.BinaryMarshaler   = (*Context)(nil)
	_ encoding.BinaryUnmarshaler = (*Context)(nil)
)

const (
	headerSize    = 4
	marshaledSize = headerSize + keccak.Width
)
