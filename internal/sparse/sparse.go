// Package sparse provides a sparse set data structure for efficient
// membership testing over a small, known universe of uint32 values.
//
// The NFA simulator in package nfa uses it to deduplicate simulation
// configurations: each (state, input index) pair is encoded as a single
// uint32 and inserted here, so revisiting the same configuration during
// the ε-cycles Closure can introduce is an O(1) no-op instead of an
// unbounded re-exploration.
package sparse

// SparseSet is a set of uint32 values that supports O(1) insertion and
// membership testing. It maintains a sparse array (value -> dense index)
// alongside a dense array (the values themselves), so Clear can reset the
// whole set in O(1) without walking every possible value.
//
// This implementation is sized for a known, relatively small universe
// fixed at construction time (here: number of NFA states times input
// length plus one), not for arbitrary growth.
type SparseSet struct {
	sparse []uint32 // maps value -> index in dense
	dense  []uint32 // the actual values, length == size
	size   uint32
}

// NewSparseSet creates a sparse set over the value range [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. A no-op if value is already present.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1) time.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}
