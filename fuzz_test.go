package sponge_test

import (
	"bytes"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/porifera/sponge"
)

// FuzzChunkIndependence absorbs a message in a fuzzer-chosen sequence of
// chunks and squeezes the output at fuzzer-chosen split points, checking that
// the result always equals the one-shot digest of the same message.
func FuzzChunkIndependence(f *testing.F) {
	f.Add([]byte("seed data for chunk independence"))
	f.Add(bytes.Repeat([]byte{0xa5}, 300))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		message, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		outLen, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		n := int(outLen%600) + 1

		want := make([]byte, n)
		sponge.ShakeSum256(want, message)

		c := sponge.SHAKE256.New()
		remaining := message
		for len(remaining) > 0 {
			step, err := tp.GetUint16()
			if err != nil {
				break
			}
			k := min(int(step%300), len(remaining))
			c.Absorb(remaining[:k])
			remaining = remaining[k:]
			if k == 0 {
				// A zero-length absorb must be a no-op; make progress anyway.
				c.Absorb(remaining[:1])
				remaining = remaining[1:]
			}
		}
		c.Absorb(remaining)
		c.Finalize()

		got := make([]byte, 0, n)
		for len(got) < n {
			step, err := tp.GetUint16()
			if err != nil {
				break
			}
			k := min(int(step%200)+1, n-len(got))
			chunk := make([]byte, k)
			c.Squeeze(chunk)
			got = append(got, chunk...)
		}
		tail := make([]byte, n-len(got))
		c.Squeeze(tail)
		got = append(got, tail...)

		if !bytes.Equal(got, want) {
			t.Errorf("chunked digest = %x, want = %x", got, want)
		}
	})
}

// FuzzVariantAgreement checks that all fixed variants are deterministic and
// produce their specified lengths for arbitrary inputs.
func FuzzVariantAgreement(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("arbitrary input"))

	f.Fuzz(func(t *testing.T, data []byte) {
		if a, b := sponge.Keccak256(data), sponge.Keccak256(data); a != b {
			t.Errorf("Keccak256 not deterministic: %x != %x", a, b)
		}
		if a, b := sponge.Sum512(data), sponge.Sum512(data); a != b {
			t.Errorf("Sum512 not deterministic: %x != %x", a, b)
		}

		// Distinct parameter sets must not collide on the same input.
		s256, k256 := sponge.Sum256(data), sponge.Keccak256(data)
		if s256 == k256 {
			t.Errorf("SHA3-256 and Keccak-256 collided on %x", data)
		}
	})
}
