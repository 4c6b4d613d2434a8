// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edgelist reads and writes the plain-text edge-list format the
// command line tool accepts: one undirected edge per line, two whitespace-
// separated non-negative integers, with '#'-prefixed lines and blank lines
// ignored. The reader follows the line-at-a-time bufio.Scanner style of
// linsolve/internal/mmarket's Matrix Market reader, simplified to this
// format's much smaller grammar.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gonum-community/gncommunity/graph/csr"
)

// Read parses an edge list from r. Lines that are empty, all whitespace, or
// begin with '#' after leading whitespace are skipped.
func Read(r io.Reader) ([]csr.RawPair, error) {
	var pairs []csr.RawPair

	s := bufio.NewScanner(r)
	lineNum := 0
	for s.Scan() {
		lineNum++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edgelist: line %d: want 2 fields, got %d", lineNum, len(fields))
		}
		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || u < 0 {
			return nil, fmt.Errorf("edgelist: line %d: bad node id %q", lineNum, fields[0])
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("edgelist: line %d: bad node id %q", lineNum, fields[1])
		}
		if u == v {
			return nil, fmt.Errorf("edgelist: line %d: self-loop %d-%d not allowed", lineNum, u, v)
		}
		pairs = append(pairs, csr.RawPair{U: u, V: v})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	if len(pairs) == 0 {
		return nil, csr.ErrInvalidInput
	}
	return pairs, nil
}

// Write serializes pairs back to the edge-list format, one edge per line,
// in the order given, so that Read of its output returns pairs unchanged.
func Write(w io.Writer, pairs []csr.RawPair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.U, p.V); err != nil {
			return err
		}
	}
	return bw.Flush()
}
