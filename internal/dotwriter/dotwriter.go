// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dotwriter renders a community partition as a Graphviz DOT
// undirected graph, coloring each vertex by its assigned community. It
// follows the block/attribute layout graph/encoding/dot emits (a top-level
// "node [...]" attribute block followed by node and edge statements), but
// is hand-written against the flat CSR arrays
// directly instead of going through that package's graph.Graph/encoding.Attributer
// interfaces, consistent with this repository's flat-array, no-polymorphism
// design.
package dotwriter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gonum-community/gncommunity/graph/csr"
)

// palette assigns a stable, cyclic Graphviz/X11 color name per community id
// so small partitions get visibly distinct colors and larger ones degrade
// gracefully by repeating.
var palette = []string{
	"lightblue", "lightcoral", "lightgoldenrod", "lightgreen",
	"lightpink", "lightsalmon", "lightseagreen", "lightskyblue",
	"plum", "khaki", "orchid", "tan",
}

// Write renders g's uncut edges and labels as a DOT undirected graph, with
// node labels taken from idmap's original ids if non-nil, and fill colors
// assigned cyclically by community id.
func Write(w io.Writer, g *csr.Graph, idmap *csr.IDMap, labels []int32) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "graph {")
	fmt.Fprintln(bw, "\tnode [")
	fmt.Fprintln(bw, "\t\tstyle=filled")
	fmt.Fprintln(bw, "\t];")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "\t// Node definitions.")
	for v := int32(0); v < g.N; v++ {
		name := nodeName(idmap, v)
		color := palette[int(labels[v])%len(palette)]
		fmt.Fprintf(bw, "\t%s [label=%q, fillcolor=%q];\n", name, name, color)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "\t// Edge definitions.")
	for id := int32(0); id < g.M; id++ {
		if g.EdgeBet[id] < 0 {
			continue // cut edges are omitted from the rendered partition
		}
		u, v := g.Endpoints(id)
		fmt.Fprintf(bw, "\t%s -- %s;\n", nodeName(idmap, u), nodeName(idmap, v))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func nodeName(idmap *csr.IDMap, v int32) string {
	if idmap != nil {
		return fmt.Sprintf("n%d", idmap.Original(v))
	}
	return fmt.Sprintf("n%d", v)
}
