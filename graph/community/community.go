// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package community implements divisive Girvan–Newman community detection
// over a graph/csr.Graph: sampled betweenness estimation, tie-broken
// maximum-edge selection and cutting, and connectivity re-evaluation,
// repeated until the target number of communities is reached or no further
// cut is possible.
//
// The reduced-graph vocabulary here (a community is a set of member vertex
// ids reached by unioning the endpoints of every surviving edge) follows
// this repository's older community package
// (gonum.org/v1/gonum/community.community/edge), generalized from a
// modularity-driven agglomerative merge to a betweenness-driven divisive
// split.
package community

import (
	"errors"
	"runtime"
	"sync"

	"github.com/gonum-community/gncommunity/graph/between"
	"github.com/gonum-community/gncommunity/graph/community/unionfind"
	"github.com/gonum-community/gncommunity/graph/csr"
)

// ErrUnsatisfiable is returned alongside the best partition reached when the
// graph cannot be divided into k communities because no positive-
// betweenness edge remains to cut (for example, the graph is already split
// into fewer than k connected components).
var ErrUnsatisfiable = errors.New("community: graph cannot be split into k components")

// Options configures a Girvan–Newman run.
type Options struct {
	// K is the target number of communities. Must be in [1, n].
	K int
	// Workers bounds how many sampled sources are accumulated
	// concurrently within one iteration. Zero or one runs the serial
	// reference path; a value above one fans the per-source BFS +
	// Brandes accumulation out across a worker pool, each with its own
	// Scratch and a private edge-credit slice that is summed into the
	// graph once every worker finishes the iteration. Because
	// accumulation across sources is associative up to float64 rounding,
	// this does not change which edges are selected for cutting in any
	// of this package's tests.
	Workers int
}

// Step records one outer-loop iteration, kept for diagnostics and for the
// optional run-trace output the CLI can emit; it carries no weight in any
// core invariant.
type Step struct {
	Iteration      int
	CutEdge        int32
	Betweenness    float64
	NumComponents  int
}

// Result is the outcome of a Girvan–Newman run.
type Result struct {
	// NumComponents is the number of communities in Labels.
	NumComponents int
	// Labels assigns each dense vertex id to a community id in
	// [0, NumComponents).
	Labels []int32
	// Steps records every cut made, in order.
	Steps []Step
}

// Run divides g into communities by iteratively cutting the
// highest-estimated-betweenness edge until the number of connected
// components reaches opts.K or no positive-betweenness edge remains.
//
// sources is the set of BFS sources used to estimate betweenness each
// iteration; callers typically pass csr.Sample(g, rate). Run
// recomputes betweenness from scratch every iteration, since cutting a
// single edge can arbitrarily reshape shortest paths elsewhere, making
// cached values from a prior iteration unsafe to reuse.
//
// If g cannot be divided into opts.K components, Run returns the best
// Result achieved alongside ErrUnsatisfiable; this is a warning condition,
// not a fatal error, and callers may still use the returned partition.
func Run(g *csr.Graph, sources []int32, opts Options) (Result, error) {
	numComponents, labels := label(g)
	var steps []Step

	iteration := 0
	for numComponents < opts.K {
		iteration++

		g.ResetCredits()
		accumulate(g, sources, opts.Workers)

		id, ok := g.SelectMax()
		if !ok {
			return Result{NumComponents: numComponents, Labels: labels, Steps: steps}, ErrUnsatisfiable
		}
		cutBetweenness := g.EdgeBet[id]
		g.Cut(id, iteration)

		numComponents, labels = label(g)
		steps = append(steps, Step{
			Iteration:     iteration,
			CutEdge:       id,
			Betweenness:   cutBetweenness,
			NumComponents: numComponents,
		})
	}

	return Result{NumComponents: numComponents, Labels: labels, Steps: steps}, nil
}

// accumulate runs the per-source BFS + Brandes accumulation, serially when
// workers <= 1, or fanned out across a bounded worker pool otherwise.
func accumulate(g *csr.Graph, sources []int32, workers int) {
	if workers <= 1 || len(sources) <= 1 {
		s := between.NewScratch(g.N)
		for _, src := range sources {
			s.Run(g, src)
		}
		return
	}
	if workers > runtime.GOMAXPROCS(0) {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(sources) {
		workers = len(sources)
	}

	partials := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		partials[w] = make([]float64, g.M)
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			shadow := g.CloneForAccumulation()
			s := between.NewScratch(g.N)
			for i := w; i < len(sources); i += workers {
				s.Run(shadow, sources[i])
			}
			for id, v := range shadow.EdgeBet {
				if g.EdgeBet[id] < 0 {
					continue // do not export credit onto a cut edge
				}
				partials[w][id] = v - g.EdgeBet[id]
			}
		}(w)
	}
	wg.Wait()

	for _, p := range partials {
		for id, v := range p {
			if g.EdgeBet[id] < 0 {
				continue
			}
			g.EdgeBet[id] += v
		}
	}
}

// label unions every uncut edge's endpoints and returns the resulting
// component count and a dense [0, numComponents) relabelling.
func label(g *csr.Graph) (numComponents int, labels []int32) {
	uf := unionfind.New(g.N)
	for id := int32(0); id < g.M; id++ {
		if g.EdgeBet[id] < 0 {
			continue
		}
		u, v := g.Endpoints(id)
		uf.Union(u, v)
	}

	_, roots := uf.Roots()
	relabel := make(map[int32]int32)
	labels = make([]int32, g.N)
	next := int32(0)
	for v := int32(0); v < g.N; v++ {
		r := roots[v]
		id, ok := relabel[r]
		if !ok {
			id = next
			relabel[r] = id
			next++
		}
		labels[v] = id
	}
	return int(next), labels
}
