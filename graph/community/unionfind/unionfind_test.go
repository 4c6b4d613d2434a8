// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionfind

import "testing"

func TestSingletonsStartSeparate(t *testing.T) {
	s := New(4)
	n, _ := s.Roots()
	if n != 4 {
		t.Fatalf("Roots() component count = %d, want 4", n)
	}
}

func TestUnionMergesComponents(t *testing.T) {
	s := New(5)
	s.Union(0, 1)
	s.Union(1, 2)
	n, roots := s.Roots()
	if n != 3 {
		t.Fatalf("component count = %d, want 3", n)
	}
	if roots[0] != roots[1] || roots[1] != roots[2] {
		t.Fatalf("0,1,2 not in the same component: roots=%v", roots)
	}
	if roots[3] == roots[0] || roots[4] == roots[0] {
		t.Fatalf("3 or 4 incorrectly merged: roots=%v", roots)
	}
}

func TestUnionIdempotent(t *testing.T) {
	s := New(3)
	s.Union(0, 1)
	s.Union(0, 1)
	s.Union(1, 0)
	n, _ := s.Roots()
	if n != 2 {
		t.Fatalf("component count = %d, want 2", n)
	}
}

func TestFindSharedRootAfterChainedUnions(t *testing.T) {
	s := New(6)
	s.Union(0, 1)
	s.Union(1, 2)
	s.Union(2, 3)
	root := s.Find(3)
	for v := int32(0); v < 4; v++ {
		if s.Find(v) != root {
			t.Errorf("Find(%d) = %d, want %d", v, s.Find(v), root)
		}
	}
}
