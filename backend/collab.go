package backend

// The interfaces below are consumed and exposed at the boundary but
// implemented elsewhere. Unlike the hashing surface, which never allocates and
// whose buffers are caller-owned, these collaborators allocate and return
// their own buffers; the two ownership conventions are deliberately distinct
// and must not be unified.

// An ErasureCodec produces and repairs systematic Reed-Solomon shard sets:
// for K data shards and M parity shards, Encode returns K+M equal-length
// buffers of which the first K hold the original data.
type ErasureCodec interface {
	// Encode splits data into dataShards shards, appends parityShards parity
	// shards, and returns the full allocated shard set.
	Encode(data []byte, dataShards, parityShards int) ([][]byte, error)

	// Reconstruct fills in missing shards (nil entries) in place, given at
	// least dataShards surviving shards. Reconstructed shards are newly
	// allocated.
	Reconstruct(shards [][]byte, dataShards, parityShards int) error
}

// A Leaf is a namespaced Merkle-tree leaf: a fixed-length namespace
// identifier (the length is set by the tree implementation) and an opaque
// payload.
type Leaf struct {
	Namespace []byte
	Payload   []byte
}

// A NamespacedTree computes root digests and inclusion proofs over an ordered
// sequence of namespaced leaves. Proofs are opaque byte sequences meaningful
// only to the matching verifier.
type NamespacedTree interface {
	// Root returns the root digest of the ordered leaves.
	Root(leaves []Leaf) ([Size]byte, error)

	// Prove returns an allocated inclusion proof for the leaf at index.
	Prove(leaves []Leaf, index int) ([]byte, error)

	// Verify reports whether proof shows that leaf is included under root.
	Verify(root [Size]byte, leaf Leaf, proof []byte) bool
}
