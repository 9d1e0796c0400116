package sponge_test

import (
	"fmt"

	"github.com/porifera/sponge"
)

func ExampleKeccak256() {
	digest := sponge.Keccak256([]byte("abc"))
	fmt.Printf("%x\n", digest)

	// Output:
	// 4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45
}

func ExampleContext() {
	// Streaming absorption: the digest depends only on the concatenated
	// bytes, not on how they were chunked.
	c := sponge.SHA3_256.New()
	c.Absorb([]byte("a"))
	c.Absorb([]byte("bc"))
	c.Finalize()

	out := make([]byte, sponge.SHA3_256.Size)
	c.Squeeze(out)
	fmt.Printf("%x\n", out)

	// Output:
	// 3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532
}
