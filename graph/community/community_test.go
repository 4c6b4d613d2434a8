// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package community

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gonum-community/gncommunity/floats"
	"github.com/gonum-community/gncommunity/graph/csr"
)

func build(t *testing.T, pairs []csr.RawPair, n int32) *csr.Graph {
	t.Helper()
	idm, edges, err := csr.BuildIDMap(pairs)
	if err != nil {
		t.Fatalf("BuildIDMap: %v", err)
	}
	return csr.Compress(edges, n, idm)
}

func allSources(g *csr.Graph) []int32 {
	return csr.Sample(g, 1.0)
}

// sameCommunity reports whether every vertex in group shares a label.
func sameCommunity(labels []int32, group ...int32) bool {
	for _, v := range group[1:] {
		if labels[v] != labels[group[0]] {
			return false
		}
	}
	return true
}

func TestRunSplitsTwoTrianglesJoinedByBridge(t *testing.T) {
	// Two triangles {0,1,2} and {3,4,5} joined by the bridge 2-3, which
	// carries all shortest paths between the halves and so has by far the
	// greatest betweenness.
	g := build(t, []csr.RawPair{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
		{2, 3},
	}, 6)

	result, err := Run(g, allSources(g), Options{K: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumComponents != 2 {
		t.Fatalf("NumComponents = %d, want 2", result.NumComponents)
	}
	if len(result.Steps) != 1 {
		t.Fatalf("Steps = %v, want exactly one cut", result.Steps)
	}
	if !sameCommunity(result.Labels, 0, 1, 2) {
		t.Errorf("labels = %v, want {0,1,2} together", result.Labels)
	}
	if !sameCommunity(result.Labels, 3, 4, 5) {
		t.Errorf("labels = %v, want {3,4,5} together", result.Labels)
	}
	if result.Labels[0] == result.Labels[3] {
		t.Errorf("labels = %v, want the two triangles in different communities", result.Labels)
	}
}

func TestRunBarbellCutsBothBridgeEnds(t *testing.T) {
	// Barbell: two triangles {0,1,2} and {4,5,6} joined through a single
	// intermediate vertex 3, via bridges 2-3 and 3-4.
	g := build(t, []csr.RawPair{
		{0, 1}, {1, 2}, {0, 2},
		{4, 5}, {5, 6}, {4, 6},
		{2, 3}, {3, 4},
	}, 7)

	result, err := Run(g, allSources(g), Options{K: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumComponents < 3 {
		t.Fatalf("NumComponents = %d, want at least 3", result.NumComponents)
	}
	if !sameCommunity(result.Labels, 0, 1, 2) {
		t.Errorf("labels = %v, want {0,1,2} together", result.Labels)
	}
	if !sameCommunity(result.Labels, 4, 5, 6) {
		t.Errorf("labels = %v, want {4,5,6} together", result.Labels)
	}
}

func TestRunPathOfSixIntoThreeComponents(t *testing.T) {
	g := build(t, []csr.RawPair{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}, 6)

	result, err := Run(g, allSources(g), Options{K: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumComponents != 3 {
		t.Fatalf("NumComponents = %d, want 3", result.NumComponents)
	}
	if len(result.Steps) != 2 {
		t.Fatalf("Steps = %v, want exactly two cuts", result.Steps)
	}
}

func TestRunAlreadyDisconnectedSkipsCutting(t *testing.T) {
	// Two disjoint edges: already 2 components before any cut.
	g := build(t, []csr.RawPair{{0, 1}, {2, 3}}, 4)

	result, err := Run(g, allSources(g), Options{K: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Steps) != 0 {
		t.Errorf("Steps = %v, want no cuts since K is already satisfied", result.Steps)
	}
	if result.NumComponents != 2 {
		t.Fatalf("NumComponents = %d, want 2", result.NumComponents)
	}
}

func TestRunStarShattersIntoSingletons(t *testing.T) {
	// Star: center 0, leaves 1..4. Every cut peels off one leaf.
	g := build(t, []csr.RawPair{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, 5)

	result, err := Run(g, allSources(g), Options{K: 5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumComponents != 5 {
		t.Fatalf("NumComponents = %d, want 5 (every vertex isolated)", result.NumComponents)
	}
	if len(result.Steps) != 4 {
		t.Fatalf("Steps = %v, want exactly 4 cuts", result.Steps)
	}
}

func TestRunUnsatisfiableKReturnsBestEffort(t *testing.T) {
	g := build(t, []csr.RawPair{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, 5)

	result, err := Run(g, allSources(g), Options{K: 6})
	if err == nil {
		t.Fatal("Run: want ErrUnsatisfiable, got nil")
	}
	if err != ErrUnsatisfiable {
		t.Fatalf("Run: err = %v, want ErrUnsatisfiable", err)
	}
	if result.NumComponents != 5 {
		t.Fatalf("NumComponents = %d, want 5 (fully shattered)", result.NumComponents)
	}
}

func TestRunWithNonContiguousRawLabels(t *testing.T) {
	g := build(t, []csr.RawPair{{100, 200}, {200, 300}, {500, 600}}, 5)

	result, err := Run(g, allSources(g), Options{K: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumComponents != 2 {
		t.Fatalf("NumComponents = %d, want 2", result.NumComponents)
	}
}

func TestRunParallelMatchesSerialLabelling(t *testing.T) {
	g := build(t, []csr.RawPair{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
		{2, 3},
	}, 6)
	gParallel := build(t, []csr.RawPair{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
		{2, 3},
	}, 6)

	serial, err := Run(g, allSources(g), Options{K: 2, Workers: 1})
	if err != nil {
		t.Fatalf("serial Run: %v", err)
	}
	parallel, err := Run(gParallel, allSources(gParallel), Options{K: 2, Workers: 4})
	if err != nil {
		t.Fatalf("parallel Run: %v", err)
	}

	if diff := cmp.Diff(serial.Labels, parallel.Labels); diff != "" {
		t.Errorf("parallel labelling mismatch (-serial +parallel):\n%s", diff)
	}

	if len(serial.Steps) != len(parallel.Steps) {
		t.Fatalf("step count mismatch: serial=%d parallel=%d", len(serial.Steps), len(parallel.Steps))
	}
	for i, s := range serial.Steps {
		p := parallel.Steps[i]
		if s.CutEdge != p.CutEdge {
			t.Errorf("step %d: cut edge mismatch: serial=%d parallel=%d", i, s.CutEdge, p.CutEdge)
		}
		// Summing worker-partitioned credit in a different grouping can
		// perturb the low bits of the accumulated betweenness, so this
		// compares with tolerance rather than requiring bit-for-bit equality.
		if !floats.EqualWithinAbsOrRel(s.Betweenness, p.Betweenness, 1e-9, 1e-9) {
			t.Errorf("step %d: betweenness mismatch: serial=%v parallel=%v", i, s.Betweenness, p.Betweenness)
		}
	}
}
