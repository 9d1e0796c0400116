package digest

import (
	"io"

	"github.com/porifera/sponge"
)

// A Shake is an extendable-output function: absorb input with Write, then read
// as much output as needed with Read. Writing after the first Read is a
// programming error and panics.
type Shake struct {
	c       sponge.Context
	params  sponge.Params
	reading bool
}

// NewShake128 returns a SHAKE128 XOF (128-bit security level).
func NewShake128() *Shake {
	return &Shake{c: sponge.SHAKE128.New(), params: sponge.SHAKE128}
}

// NewShake256 returns a SHAKE256 XOF (256-bit security level).
func NewShake256() *Shake {
	return &Shake{c: sponge.SHAKE256.New(), params: sponge.SHAKE256}
}

func (s *Shake) Write(p []byte) (n int, err error) {
	if s.reading {
		panic("digest: cannot write to a Shake after reading")
	}
	s.c.Absorb(p)
	return len(p), nil
}

func (s *Shake) Read(p []byte) (n int, err error) {
	if !s.reading {
		s.c.Finalize()
		s.reading = true
	}
	s.c.Squeeze(p)
	return len(p), nil
}

// Reset returns the Shake to its initial state.
func (s *Shake) Reset() {
	s.c = s.params.New()
	s.reading = false
}

// BlockSize returns the XOF's rate in bytes.
func (s *Shake) BlockSize() int {
	return s.c.Rate()
}

var (
	_ io.Writer = (*Shake)(nil)
	_ io.Reader = (*Shake)(nil)
)
