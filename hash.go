package sponge

// Keccak256 returns the legacy Keccak-256 digest of data. A nil or empty slice
// is a valid input.
func Keccak256(data []byte) [32]byte {
	var out [32]byte
	sum(LegacyKeccak256, out[:], data)
	return out
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [28]byte {
	var out [28]byte
	sum(SHA3_224, out[:], data)
	return out
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	sum(SHA3_256, out[:], data)
	return out
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [48]byte {
	var out [48]byte
	sum(SHA3_384, out[:], data)
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	sum(SHA3_512, out[:], data)
	return out
}

// ShakeSum128 fills out with SHAKE128 output of data. The output length is
// whatever the caller asks for, including zero.
func ShakeSum128(out, data []byte) {
	sum(SHAKE128, out, data)
}

// ShakeSum256 fills out with SHAKE256 output of data.
func ShakeSum256(out, data []byte) {
	sum(SHAKE256, out, data)
}

func sum(p Params, out, data []byte) {
	c := p.New()
	c.Absorb(data)
	c.Finalize()
	c.Squeeze(out)
}
