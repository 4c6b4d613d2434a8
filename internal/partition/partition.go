// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition formats the community assignment a Girvan–Newman run
// produces for output: one "original-label community-id" pair per line,
// ascending by original label, mirroring the two-column style of
// internal/edgelist's input format.
package partition

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/gonum-community/gncommunity/graph/csr"
)

// Write emits one line per vertex: the caller's original node label
// (recovered through idmap if non-nil, otherwise the dense id itself),
// a space, and its assigned community id. Lines are sorted by original
// label ascending.
func Write(w io.Writer, idmap *csr.IDMap, labels []int32) error {
	type row struct {
		original  int64
		community int32
	}
	rows := make([]row, len(labels))
	for v, community := range labels {
		var original int64
		if idmap != nil {
			original = idmap.Original(int32(v))
		} else {
			original = int64(v)
		}
		rows[v] = row{original: original, community: community}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].original < rows[j].original })

	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%d %d\n", r.original, r.community); err != nil {
			return err
		}
	}
	return bw.Flush()
}
