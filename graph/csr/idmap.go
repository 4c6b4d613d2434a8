// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csr

import (
	"sort"

	"github.com/gonum-community/gncommunity/internal/radix"
)

// RawPair is one input (u, v) edge using the caller's original node labels.
// Labels need not be contiguous, need not start at zero, and need not be
// sorted.
type RawPair struct {
	U, V int64
}

// Edge is a remapped undirected edge: I and J are dense vertex ids in
// [0, n), and ID is the edge's stable identifier in [0, m).
type Edge = radix.Record

// IDMap is the bijection between a graph's dense [0, n) vertex ids and the
// arbitrary integer labels the caller's input used. It replaces the
// process-wide hash table a naive implementation reaches for with an
// explicit, owned mapping: original IDs are kept as a sorted array, and
// raw-to-new lookups are answered by binary search rather than a global
// table.
type IDMap struct {
	// original holds original_id[new_id]: position i is the raw label
	// that was assigned dense id i.
	original []int64
}

// Len returns the number of distinct vertices in the map.
func (m *IDMap) Len() int { return len(m.original) }

// Original returns the raw label for dense id v.
func (m *IDMap) Original(v int32) int64 { return m.original[v] }

// New returns the dense id assigned to raw label x, and whether x was seen
// while building the map.
func (m *IDMap) New(x int64) (int32, bool) {
	i := sort.Search(len(m.original), func(i int) bool { return m.original[i] >= x })
	if i < len(m.original) && m.original[i] == x {
		return int32(i), true
	}
	return 0, false
}

// BuildIDMap remaps the raw node labels appearing in pairs to a contiguous
// [0, n) range and assigns each edge a stable identifier in [0, m). It
// returns ErrInvalidInput if pairs is empty.
func BuildIDMap(pairs []RawPair) (*IDMap, []Edge, error) {
	if len(pairs) == 0 {
		return nil, nil, ErrInvalidInput
	}

	scratch := make([]int64, 0, 2*len(pairs))
	for _, p := range pairs {
		scratch = append(scratch, p.U, p.V)
	}
	sort.Slice(scratch, func(i, j int) bool { return scratch[i] < scratch[j] })

	original := scratch[:0]
	for i, x := range scratch {
		if i == 0 || x != original[len(original)-1] {
			original = append(original, x)
		}
	}
	idm := &IDMap{original: append([]int64(nil), original...)}

	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		u, _ := idm.New(p.U)
		v, _ := idm.New(p.V)
		edges[i] = Edge{I: u, J: v, ID: int32(i)}
	}

	return idm, edges, nil
}
