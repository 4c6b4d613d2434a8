// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unionfind implements a disjoint-set forest over the dense
// [0, n) vertex ids a graph/csr.Graph uses, grounded on the weighted
// quick-union with path compression found in
// gonum.org/v1/gonum/graph/path's djSet/dsNode, generalized from a
// map[int64]*dsNode keyed by arbitrary node id to a slice of nodes indexed
// directly by dense vertex id, since the core's ids are already contiguous.
package unionfind

// node is one element of the disjoint-set forest.
type node struct {
	parent int32 // index of parent in the owning Set, or itself if a root
	rank   int32
}

// Set is a disjoint-set forest over n singletons.
type Set struct {
	nodes []node
}

// New returns a Set of n singleton components.
func New(n int32) *Set {
	s := &Set{nodes: make([]node, n)}
	for i := range s.nodes {
		s.nodes[i].parent = int32(i)
	}
	return s
}

// Find returns the canonical root of the component containing v, compressing
// the path from v to the root as it walks it.
func (s *Set) Find(v int32) int32 {
	root := v
	for s.nodes[root].parent != root {
		root = s.nodes[root].parent
	}
	for s.nodes[v].parent != root {
		s.nodes[v].parent, v = root, s.nodes[v].parent
	}
	return root
}

// Union merges the components containing a and b.
func (s *Set) Union(a, b int32) {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return
	}
	switch {
	case s.nodes[ra].rank < s.nodes[rb].rank:
		s.nodes[ra].parent = rb
	case s.nodes[ra].rank > s.nodes[rb].rank:
		s.nodes[rb].parent = ra
	default:
		s.nodes[rb].parent = ra
		s.nodes[ra].rank++
	}
}

// Roots returns the canonical root of every vertex's component and the
// number of distinct roots.
func (s *Set) Roots() (numComponents int, roots []int32) {
	roots = make([]int32, len(s.nodes))
	seen := make(map[int32]bool, len(s.nodes))
	for v := range s.nodes {
		r := s.Find(int32(v))
		roots[v] = r
		if !seen[r] {
			seen[r] = true
			numComponents++
		}
	}
	return numComponents, roots
}
