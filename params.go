package sponge

// Params names a standard sponge variant: a rate, a domain separator, and a
// fixed digest size (zero for the extendable-output variants). Parameter sets
// are plain immutable values, never mutated at runtime.
type Params struct {
	Rate  int  // absorb/squeeze window, bytes
	Delim byte // domain separator applied at finalization
	Size  int  // digest size in bytes; 0 for XOFs
}

// New returns a fresh Context for the parameter set.
func (p Params) New() Context {
	return New(p.Rate, p.Delim)
}

// Standard parameter sets. LegacyKeccak256 is the pre-standardization Keccak
// used by Ethereum and friends; it differs from SHA3_256 only in its domain
// separator.
var (
	LegacyKeccak256 = Params{Rate: 136, Delim: 0x01, Size: 32}
	SHA3_224        = Params{Rate: 144, Delim: 0x06, Size: 28}
	SHA3_256        = Params{Rate: 136, Delim: 0x06, Size: 32}
	SHA3_384        = Params{Rate: 104, Delim: 0x06, Size: 48}
	SHA3_512        = Params{Rate: 72, Delim: 0x06, Size: 64}
	SHAKE128        = Params{Rate: 168, Delim: 0x1f}
	SHAKE256        = Params{Rate: 136, Delim: 0x1f}
)
