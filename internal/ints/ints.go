// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ints provides a minimal growable int32 sequence, the collaborator
// the core graph packages use in place of a generic dynamic-array container.
//
// The simple accessor methods are provided to allow ease of implementation
// change should the need arise, following the convention of
// gonum.org/v1/gonum/graph/internal/set.
package ints

// Slice is a growable, order-preserving sequence of int32 values.
type Slice []int32

// Append adds v to the end of the sequence.
func (s *Slice) Append(v int32) {
	*s = append(*s, v)
}

// PopLast removes and returns the last element of the sequence. It panics if
// the sequence is empty.
func (s *Slice) PopLast() int32 {
	old := *s
	n := len(old) - 1
	v := old[n]
	*s = old[:n]
	return v
}

// Len reports the number of elements in the sequence.
func (s Slice) Len() int {
	return len(s)
}

// At returns the element at index i.
func (s Slice) At(i int) int32 {
	return s[i]
}

// Reset empties the sequence while retaining its backing array.
func (s *Slice) Reset() {
	*s = (*s)[:0]
}

// Dedup removes adjacent duplicate values in place, shrinking the sequence.
// The caller must ensure s is sorted if full deduplication is required;
// non-adjacent duplicates are left in place.
func (s *Slice) Dedup() {
	old := *s
	if len(old) < 2 {
		return
	}
	w := 1
	for r := 1; r < len(old); r++ {
		if old[r] == old[w-1] {
			continue
		}
		old[w] = old[r]
		w++
	}
	*s = old[:w]
}

// Has reports whether v is present anywhere in the sequence. It is a linear
// scan, acceptable only for the small predecessor lists the core maintains
// per vertex.
func (s Slice) Has(v int32) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
