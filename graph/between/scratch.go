// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package between implements Brandes' single-source shortest-path edge
// betweenness accumulation over a graph/csr.Graph. It is the estimator half
// of the sampled Girvan–Newman pipeline: graph/community drives it once per
// sampled source per outer iteration.
package between

import (
	"github.com/gonum-community/gncommunity/graph/csr"
	"github.com/gonum-community/gncommunity/internal/ints"
	"github.com/gonum-community/gncommunity/internal/intqueue"
)

// Scratch holds the BFS and Brandes accumulation state for one source at a
// time. It is allocated once for a graph of n vertices and reset between
// sources to avoid per-source allocation churn; reset zeroes sigma, sets
// distance to -1, and clears the stack and every predecessor list while
// preserving their backing capacity.
type Scratch struct {
	n int32

	distance     []int32
	parent       []int32
	sigma        []int64
	predecessors []ints.Slice
	delta        []float64
	stack        ints.Slice
	queue        intqueue.Queue
}

// NewScratch allocates accumulator state sized for a graph of n vertices.
func NewScratch(n int32) *Scratch {
	s := &Scratch{
		n:            n,
		distance:     make([]int32, n),
		parent:       make([]int32, n),
		sigma:        make([]int64, n),
		predecessors: make([]ints.Slice, n),
		delta:        make([]float64, n),
	}
	for v := range s.distance {
		s.distance[v] = -1
	}
	return s
}

func (s *Scratch) reset() {
	for v := int32(0); v < s.n; v++ {
		s.distance[v] = -1
		s.sigma[v] = 0
		s.predecessors[v].Reset()
	}
	s.stack.Reset()
	s.queue.Reset()
}

// BFS computes, from source, the shortest-path DAG over g's uncut edges:
// distance, first-discovered parent, shortest-path counts (sigma), the
// complete predecessor sets, and a stack of discovered vertices in
// non-decreasing distance order. Cut edges (EdgeBet < 0) are treated as
// absent.
func (s *Scratch) BFS(g *csr.Graph, source int32) {
	s.reset()

	s.distance[source] = 0
	s.sigma[source] = 1
	s.parent[source] = source
	s.queue.Enqueue(source)

	for s.queue.Len() != 0 {
		u := s.queue.Dequeue()
		s.stack.Append(u)

		for idx := g.Offset[u]; idx < g.Offset[u+1]; idx++ {
			id := g.EdgeID[idx]
			if g.EdgeBet[id] < 0 {
				continue // cut edge: absent from traversal
			}
			w := g.Neighbor[idx]

			if s.distance[w] < 0 {
				s.distance[w] = s.distance[u] + 1
				s.parent[w] = u
				s.queue.Enqueue(w)
			}
			if s.distance[w] == s.distance[u]+1 {
				s.sigma[w] += s.sigma[u]
				if !s.predecessors[w].Has(u) {
					s.predecessors[w].Append(u)
				}
			}
		}
	}
}

// Accumulate back-propagates Brandes' dependency scores along the shortest-
// path DAG BFS computed, crediting each traversed edge in g.EdgeBet. It must
// be called immediately after BFS, against the same graph.
func (s *Scratch) Accumulate(g *csr.Graph) {
	for v := int32(0); v < s.n; v++ {
		s.delta[v] = 0
	}

	for s.stack.Len() != 0 {
		w := s.stack.PopLast()
		sw := s.sigma[w]
		if sw == 0 {
			// Unreachable in practice: a non-empty predecessor list
			// implies sigma[w] > 0. Kept as a defensive guard against
			// dividing by zero.
			continue
		}
		for _, u := range s.predecessors[w] {
			credit := float64(s.sigma[u]) / float64(sw) * (1 + s.delta[w])
			s.delta[u] += credit
			if id, ok := g.EdgeIDBetween(u, w); ok {
				g.EdgeBet[id] += credit
			}
		}
	}
}

// Run executes BFS and Accumulate for source in sequence, the usual way the
// two are driven together.
func (s *Scratch) Run(g *csr.Graph, source int32) {
	s.BFS(g, source)
	s.Accumulate(g)
}
