// Package keccak implements the Keccak-f[1600] permutation.
//
// The state is a 200-byte buffer holding 25 little-endian 64-bit lanes,
// addressed as a 5×5 matrix with x varying fastest. The permutation is
// table-driven: a loop over the 24 round constants with fixed rotation and
// relocation tables, leaving unrolling to the compiler.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// Width is the permutation width in bytes (1600 bits).
const Width = 200

// Rounds is the number of rounds in Keccak-f[1600].
const Rounds = 24

// F1600 applies the Keccak-f[1600] permutation to the state in place.
func F1600(a *[Width]byte) {
	var st [25]uint64
	for i := range st {
		st[i] = binary.LittleEndian.Uint64(a[i*8:])
	}

	var bc [5]uint64
	for _, rc := range roundConstants {
		// Theta: XOR each lane with the parities of two neighboring columns.
		for x := range 5 {
			bc[x] = st[x] ^ st[x+5] ^ st[x+10] ^ st[x+15] ^ st[x+20]
		}
		for x := range 5 {
			d := bc[(x+4)%5] ^ bits.RotateLeft64(bc[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				st[y+x] ^= d
			}
		}

		// Rho and Pi: rotate each lane and move it to its new position,
		// following the cycle starting at (1, 0).
		t := st[1]
		for i := range 24 {
			j := relocations[i]
			bc[0] = st[j]
			st[j] = bits.RotateLeft64(t, rotations[i])
			t = bc[0]
		}

		// Chi: the only nonlinear step.
		for y := 0; y < 25; y += 5 {
			for x := range 5 {
				bc[x] = st[y+x]
			}
			for x := range 5 {
				st[y+x] = bc[x] ^ (^bc[(x+1)%5] & bc[(x+2)%5])
			}
		}

		// Iota: break round symmetry via lane (0, 0).
		st[0] ^= rc
	}

	for i := range st {
		binary.LittleEndian.PutUint64(a[i*8:], st[i])
	}
}

// roundConstants are the 24 Keccak-f[1600] round constants.
var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotations and relocations describe the Rho and Pi steps as a single
// 24-element cycle over the non-origin lanes: on step i, the lane carried from
// the previous step is rotated left by rotations[i] and written to lane index
// relocations[i].
var (
	rotations = [24]int{
		1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
		27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
	}
	relocations = [24]int{
		10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
		15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
	}
)
