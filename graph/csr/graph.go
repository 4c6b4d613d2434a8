// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csr implements a compressed-row, doubly-stored, undirected sparse
// graph: the adjacency structure the Girvan–Newman community detector
// operates on. All data is flat arrays of integers and floats, following the
// "no polymorphism" design of the system this package belongs to — there is
// no graph.Node/graph.Edge interface here, unlike
// gonum.org/v1/gonum/graph's node-interface graphs, because the scale this
// package targets (sparse graphs with millions of edges) makes per-node
// boxing and map-based adjacency prohibitively expensive.
package csr

import (
	"math"
	"sort"

	"github.com/gonum-community/gncommunity/internal/radix"
)

// pairKey canonicalizes an undirected edge's endpoints for the pair index.
type pairKey struct{ u, v int32 }

func canon(u, v int32) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{u, v}
}

// Graph is a sparse, undirected, doubly-stored CSR graph with a per-edge
// betweenness accumulator. A cut edge is represented by overwriting its
// EdgeBet entry with a negative sentinel encoding the iteration of its
// removal; once cut, an edge is never uncut within a run.
type Graph struct {
	N, M int32

	// Offset has length N+1: vertex v's neighbors occupy
	// Neighbor[Offset[v]:Offset[v+1]].
	Offset []int32
	// Neighbor and EdgeID both have length 2*M; both directed copies of
	// one undirected edge carry the same EdgeID entry.
	Neighbor []int32
	EdgeID   []int32
	// EdgeBet has length M. EdgeBet[id] < 0 means the edge is cut; the
	// magnitude encodes the iteration it was cut on.
	EdgeBet []float64
	// Degree[v] == Offset[v+1] - Offset[v], cached for repeated sampling.
	Degree []int32

	// OriginalID maps dense vertex ids back to the caller's raw labels.
	OriginalID *IDMap

	pairIndex map[pairKey]int32
	// endpointU, endpointV hold, per edge id, the undirected edge's two
	// endpoints (in the order they were first seen by BuildIDMap), giving
	// Endpoints an O(1) reverse lookup instead of a CSR scan.
	endpointU []int32
	endpointV []int32
}

// Compress builds the doubly-stored CSR graph from a remapped, not
// necessarily sorted, undirected edge list over n vertices. idmap is
// attached to the result as Graph.OriginalID so output stages can map dense
// ids back to the caller's raw labels; it may be nil if the caller has no
// need to recover original labels.
//
// Each undirected edge {a,b} is expanded into two directed records (a,b,id)
// and (b,a,id), stably radix-sorted by source endpoint, and then sliced into
// per-vertex neighbor runs; isolated vertices get an empty slice by
// construction, since the offset scan simply does not advance for them.
func Compress(edges []Edge, n int32, idmap *IDMap) *Graph {
	doubled := make([]radix.Record, 0, 2*len(edges))
	for _, e := range edges {
		doubled = append(doubled, radix.Record{I: e.I, J: e.J, ID: e.ID})
		doubled = append(doubled, radix.Record{I: e.J, J: e.I, ID: e.ID})
	}
	radix.SortByColumn(doubled, 0)

	offset := make([]int32, n+1)
	neighbor := make([]int32, len(doubled))
	edgeID := make([]int32, len(doubled))
	for i, r := range doubled {
		neighbor[i] = r.J
		edgeID[i] = r.ID
	}

	idx := 0
	for v := int32(0); v < n; v++ {
		offset[v] = int32(idx)
		for idx < len(doubled) && doubled[idx].I == v {
			idx++
		}
	}
	offset[n] = int32(len(doubled))

	degree := make([]int32, n)
	for v := int32(0); v < n; v++ {
		degree[v] = offset[v+1] - offset[v]
	}

	pairIndex := make(map[pairKey]int32, len(edges))
	endpointU := make([]int32, len(edges))
	endpointV := make([]int32, len(edges))
	for _, e := range edges {
		pairIndex[canon(e.I, e.J)] = e.ID
		endpointU[e.ID] = e.I
		endpointV[e.ID] = e.J
	}

	return &Graph{
		N:          n,
		M:          int32(len(edges)),
		Offset:     offset,
		Neighbor:   neighbor,
		EdgeID:     edgeID,
		EdgeBet:    make([]float64, len(edges)),
		Degree:     degree,
		OriginalID: idmap,
		pairIndex:  pairIndex,
		endpointU:  endpointU,
		endpointV:  endpointV,
	}
}

// CloneForAccumulation returns a Graph sharing g's immutable topology
// (Offset, Neighbor, EdgeID, Degree, pairIndex) but with its own EdgeBet
// slice, seeded from g's current values. It lets independent goroutines
// accumulate betweenness credit into private copies before the caller sums
// them back into g, without risking a data race on the shared slice.
func (g *Graph) CloneForAccumulation() *Graph {
	return &Graph{
		N:          g.N,
		M:          g.M,
		Offset:     g.Offset,
		Neighbor:   g.Neighbor,
		EdgeID:     g.EdgeID,
		EdgeBet:    append([]float64(nil), g.EdgeBet...),
		Degree:     g.Degree,
		OriginalID: g.OriginalID,
		pairIndex:  g.pairIndex,
		endpointU:  g.endpointU,
		endpointV:  g.endpointV,
	}
}

// EdgeIDBetween returns the edge id registered for the undirected pair
// (u, v), and whether such an edge exists.
func (g *Graph) EdgeIDBetween(u, v int32) (int32, bool) {
	id, ok := g.pairIndex[canon(u, v)]
	return id, ok
}

// Endpoints returns the two vertices joined by edge id in O(1), using the
// lookup table built alongside the pair index in Compress.
func (g *Graph) Endpoints(id int32) (u, v int32) {
	return g.endpointU[id], g.endpointV[id]
}

// IsCut reports whether edge id has been cut.
func (g *Graph) IsCut(id int32) bool {
	return g.EdgeBet[id] < 0
}

// Cut marks edge id as removed on the given iteration (iteration numbers
// start at 1). The CSR arrays and the pair index are left untouched; every
// reader is required to treat a negative EdgeBet entry as "edge absent".
func (g *Graph) Cut(id int32, iteration int) {
	g.EdgeBet[id] = -float64(iteration)
}

// ResetCredits zeroes every uncut edge's accumulated betweenness, preserving
// the negative cut sentinels, ready for the next Girvan–Newman iteration's
// accumulation pass.
func (g *Graph) ResetCredits() {
	for i, v := range g.EdgeBet {
		if v < 0 {
			continue
		}
		g.EdgeBet[i] = 0
	}
}

// SelectMax returns the id of the edge with the strictly greatest positive
// betweenness, ties broken by the smallest edge id, or ok == false if no
// positive entry remains.
func (g *Graph) SelectMax() (id int32, ok bool) {
	best := int32(-1)
	var bestVal float64
	for i, v := range g.EdgeBet {
		if v <= 0 {
			continue
		}
		if best == -1 || v > bestVal {
			best = int32(i)
			bestVal = v
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// Sample ranks vertices by degree descending, breaking ties by ascending
// vertex id, and returns the first ⌈rate·n⌉ of them as BFS sources for
// betweenness estimation.
func Sample(g *Graph, rate float64) []int32 {
	ranked := make([]int32, g.N)
	for v := range ranked {
		ranked[v] = int32(v)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if g.Degree[a] != g.Degree[b] {
			return g.Degree[a] > g.Degree[b]
		}
		return a < b
	})

	count := int(math.Ceil(rate * float64(g.N)))
	if count > len(ranked) {
		count = len(ranked)
	}
	if count < 0 {
		count = 0
	}
	return append([]int32(nil), ranked[:count]...)
}
