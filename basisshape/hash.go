package basisshape

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
)

// hashNodes computes the structural hash of a node set: FNV-1a over the
// dimension, the node count, and every node in sorted lexicographic order.
// Sorting makes the digest a pure function of the set, independent of the
// canonical iteration order a family happens to use, so two shapes with
// equal node sets hash equal even across families. FNV is deterministic
// across runs and processes; this is a deduplication key, not a security
// digest.
//
// Complexity: O(n·D·log n) time, O(n) memory for the sorted view.
func hashNodes(dim int, nodes []Node) uint64 {
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	slices.SortFunc(sorted, CompareNodes)

	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(dim))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(len(sorted)))
	h.Write(buf[:])
	for _, k := range sorted {
		for _, v := range k {
			binary.BigEndian.PutUint64(buf[:], uint64(v))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}
