// Package shapestore persists basis shapes by content: every shape is
// stored once under its structural hash, as a JSON-encoded description
// sufficient to reconstruct an equal shape.
//
// The store is the deduplication point of a simulation run. A propagation
// loop saves the current basis shape of every component at every timestep;
// since shapes recur far more often than they change, keying by structural
// hash collapses the stream to the handful of distinct shapes actually
// used, and coefficient records elsewhere only need to carry the 64-bit
// hash.
//
// Storage is BadgerDB, embedded and transactional; InMemoryConfig gives a
// disk-free store for tests.
//
// ⚙️ Usage:
//
//	st, err := shapestore.Open(shapestore.Config{Path: "run1/shapes"})
//	...
//	hash, err := st.Put(shape)          // idempotent
//	again, err := st.Get(hash)          // equal node set, equal hash
//
// The core algebra in basisshape never imports this package; persistence
// is strictly a consumer of the Shape contract (Description + Hash).
package shapestore
