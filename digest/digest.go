// Package digest provides hash.Hash implementations of the SHA-3 and legacy
// Keccak digests, plus SHAKE extendable-output readers, built on the sponge
// context.
package digest

import (
	"hash"

	"github.com/porifera/sponge"
	"github.com/porifera/sponge/internal/mem"
)

// New224 returns a hash.Hash computing SHA3-224.
func New224() hash.Hash { return newDigest(sponge.SHA3_224) }

// New256 returns a hash.Hash computing SHA3-256.
func New256() hash.Hash { return newDigest(sponge.SHA3_256) }

// New384 returns a hash.Hash computing SHA3-384.
func New384() hash.Hash { return newDigest(sponge.SHA3_384) }

// New512 returns a hash.Hash computing SHA3-512.
func New512() hash.Hash { return newDigest(sponge.SHA3_512) }

// NewLegacyKeccak256 returns a hash.Hash computing pre-standardization
// Keccak-256, as used by Ethereum. Use New256 unless interoperating with
// legacy callers.
func NewLegacyKeccak256() hash.Hash { return newDigest(sponge.LegacyKeccak256) }

func newDigest(p sponge.Params) hash.Hash {
	return &digest{c: p.New(), params: p}
}

type digest struct {
	c      sponge.Context
	params sponge.Params
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.c.Absorb(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	// The context is a plain value, so cloning it keeps Sum from disturbing
	// the ongoing stream.
	c := d.c
	c.Finalize()
	head, tail := mem.SliceForAppend(b, d.params.Size)
	c.Squeeze(tail)
	return head
}

func (d *digest) Reset() {
	d.c = d.params.New()
}

func (d *digest) Size() int {
	return d.params.Size
}

func (d *digest) BlockSize() int {
	return d.c.Rate()
}

var _ hash.Hash = (*digest)(nil)
