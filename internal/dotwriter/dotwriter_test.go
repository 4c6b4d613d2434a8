// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gonum-community/gncommunity/graph/csr"
)

func TestWriteProducesValidDOTSkeleton(t *testing.T) {
	idm, edges, err := csr.BuildIDMap([]csr.RawPair{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("BuildIDMap: %v", err)
	}
	g := csr.Compress(edges, 3, idm)
	labels := []int32{0, 0, 1}

	var buf bytes.Buffer
	if err := Write(&buf, g, idm, labels); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "graph {") {
		t.Errorf("output does not start with DOT graph header:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "}") {
		t.Errorf("output does not end with closing brace:\n%s", out)
	}
	for _, want := range []string{"n0", "n1", "n2", "n0 -- n1", "n1 -- n2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOmitsCutEdges(t *testing.T) {
	idm, edges, err := csr.BuildIDMap([]csr.RawPair{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("BuildIDMap: %v", err)
	}
	g := csr.Compress(edges, 3, idm)
	id, ok := g.EdgeIDBetween(0, 1)
	if !ok {
		t.Fatal("expected edge(0,1) to exist")
	}
	g.Cut(id, 1)

	var buf bytes.Buffer
	if err := Write(&buf, g, idm, []int32{0, 1, 1}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "n0 -- n1") {
		t.Errorf("output should omit cut edge n0--n1:\n%s", buf.String())
	}
}
